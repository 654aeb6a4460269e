package models

import "gorm.io/gorm"

// Inquiry is a standalone lead-capture record. It has no relationship
// to User.
type Inquiry struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"` // stored lowercase
	Phone     string `json:"phone" gorm:"default:''"`
	Course    string `json:"course" gorm:"default:'Backend Development'"`
	StartDate string `json:"startDate" gorm:"default:''"`
	Education string `json:"education" gorm:"default:''"`
	City      string `json:"city" gorm:"default:''"`
	Message   string `json:"message" gorm:"default:''"`
	Source    string `json:"source" gorm:"default:''"`
}
