package model

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a product supplier with delivery performance counters.
// The counters feed the supplier performance report.
type Supplier struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	Name            string         `json:"name" gorm:"type:varchar(255);not null;unique"`
	ContactPerson   string         `json:"contact_person" gorm:"type:varchar(255)"`
	Email           string         `json:"email" gorm:"type:varchar(255)"`
	Phone           string         `json:"phone" gorm:"type:varchar(50)"`
	EarlyDeliveries  int            `json:"early_deliveries" gorm:"default:0"`
	OnTimeDeliveries int            `json:"on_time_deliveries" gorm:"default:0"`
	LateDeliveries   int            `json:"late_deliveries" gorm:"default:0"`
	IsActive         bool           `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
