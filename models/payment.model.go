package models

import (
	"gorm.io/gorm"
)

// Payment statuses. Only PaymentCompleted is ever written by the
// simulated gateway; PaymentPending and PaymentFailed stay part of the
// wire contract for clients that render them.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment is a ledger entry. Rows are immutable once written.
type Payment struct {
	gorm.Model
	UserID        uint   `json:"userId" gorm:"index;not null"`
	Amount        uint   `json:"amount" gorm:"not null"`
	PaymentStatus string `json:"paymentStatus" gorm:"default:'pending'"`
	TransactionID string `json:"transactionId" gorm:"unique;not null"`
}
