package model

import (
	"time"
)

// ReturnType discriminates what a product return is filed against.
type ReturnType string

const (
	ReturnTypeProduct ReturnType = "product"
	ReturnTypeOrder   ReturnType = "order"
)

// ReturnReason enumerates the accepted reasons for a product return.
type ReturnReason string

const (
	ReturnReasonLost   ReturnReason = "Lost"
	ReturnReasonReturn ReturnReason = "Return"
	ReturnReasonRefund ReturnReason = "Refund"
	ReturnReasonOther  ReturnReason = "Other"
)

// ValidReturnReason reports whether r is one of the enumerated reasons.
func ValidReturnReason(r ReturnReason) bool {
	switch r {
	case ReturnReasonLost, ReturnReasonReturn, ReturnReasonRefund, ReturnReasonOther:
		return true
	}
	return false
}

// ProductReturn represents a return filed against a product or a sales order.
// TargetID references a product or a sales order depending on Type.
type ProductReturn struct {
	ID          uint         `json:"id" gorm:"primarykey"`
	UserID      uint         `json:"user_id" gorm:"index;not null"`
	TargetID    uint         `json:"target_id" gorm:"not null"`
	Type        ReturnType   `json:"type" gorm:"type:varchar(20);not null"`
	Quantity    int          `json:"quantity" gorm:"not null"`
	Reason      ReturnReason `json:"reason" gorm:"type:varchar(20);not null"`
	OtherReason string       `json:"other_reason,omitempty" gorm:"type:varchar(500)"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
