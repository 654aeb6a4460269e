package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Duration    int64  `json:"duration" gorm:"not null"` // duration in days
	Instructor  string `json:"instructor" gorm:"not null"`
}
