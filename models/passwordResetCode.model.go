package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetCode is a single-use, time-boxed proof of ownership for
// the reset-password flow. A bare email is never accepted as identity.
type PasswordResetCode struct {
	gorm.Model
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Email     string    `json:"email" gorm:"index;not null"`
	Code      string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	IsUsed    bool      `json:"isUsed" gorm:"default:false"`
}
