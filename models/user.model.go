package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null;index"` // stored lowercase
	Password    string `json:"-" gorm:"not null"`                  // bcrypt hash, never serialized
	PhoneNumber string `json:"phoneNumber" gorm:"not null"`
	Role        string `json:"role" gorm:"default:'user'"` // user, admin
	HasPaid     bool   `json:"hasPaid" gorm:"default:false"`

	// Link to the most recent completed payment, if any
	PaymentID *uint    `json:"paymentId"`
	Payment   *Payment `json:"payment,omitempty" gorm:"foreignKey:PaymentID"`

	EnrolledCourses []Course `json:"enrolledCourses" gorm:"many2many:user_courses"`
}
