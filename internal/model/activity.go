package model

import (
	"time"
)

// UserActivityLog represents a single entry in the recent-activity feed.
// Entries are returned most-recent-first; ordering is assigned by the
// backend, clients never splice locally.
type UserActivityLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Action    string    `json:"action" gorm:"type:varchar(100);not null"`
	Details   string    `json:"details" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
