package model

import (
	"time"

	"gorm.io/gorm"
)

// SalesOrder represents a customer order. Order-type product returns
// reference it, and the weekly sales report aggregates over it.
type SalesOrder struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	CustomerName string         `json:"customer_name" gorm:"type:varchar(255)"`
	TotalAmount  float64        `json:"total_amount" gorm:"not null"`
	Status       string         `json:"status" gorm:"type:varchar(50);default:'pending'"`
	OrderDate    time.Time      `json:"order_date" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
