package models

import (
	"time"

	"gorm.io/gorm"
)

// IntakeRecord is one user's logged water for one calendar day.
// Date is truncated to local midnight; there is at most one row per
// (user, day) and writes replace the prior amount.
type IntakeRecord struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_intake_user_date,unique;not null"`
	Date     time.Time `gorm:"index:idx_intake_user_date,unique;not null"`
	AmountOz int
}
