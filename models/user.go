package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID   string `gorm:"uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	WeightLbs   float64
	DailyGoalOz int
	IsNewUser   bool `gorm:"default:true"`

	Disabled      bool
	ResetToken    string
	ResetTokenExp time.Time
}
