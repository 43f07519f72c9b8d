package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment status enum values
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Payment is a plan purchase processed by the external payment gateway.
// The admin service only reads these for reporting.
type Payment struct {
	gorm.Model
	OrderID       string     `json:"orderId" gorm:"unique;not null"`
	ParentID      uint       `json:"parentId" gorm:"index;not null"`
	StudentID     uint       `json:"studentId" gorm:"index;not null"`
	Amount        float64    `json:"amount" gorm:"not null;default:0"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PlanPurchased string     `json:"planPurchased" gorm:"default:''"`
	PaidAt        *time.Time `json:"paidAt"`
	IsDeleted     bool       `json:"isDeleted" gorm:"default:false"`
}

func (p Payment) EntityID() uint { return p.ID }
