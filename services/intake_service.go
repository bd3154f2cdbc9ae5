package services

import (
	"errors"
	"time"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"

	"gorm.io/gorm"
)

var ErrNegativeAmount = errors.New("intake amount cannot be negative")

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// RecordIntake upserts the amount for (user, day). The amount is the
// day's cumulative total, not a delta: a second write for the same day
// replaces the first. Callers that add drinks together do the addition
// before calling.
func RecordIntake(userID uint, day time.Time, amountOz int) error {
	if amountOz < 0 {
		return ErrNegativeAmount
	}
	start := dayStartLocal(day)

	var rec models.IntakeRecord
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.IntakeRecord{
			UserID:   userID,
			Date:     start,
			AmountOz: amountOz,
		}
		return config.DB.Create(&rec).Error
	}
	if err != nil {
		return err
	}

	rec.AmountOz = amountOz
	return config.DB.Save(&rec).Error
}

// GetIntake returns the logged amount for (user, day), and 0 for days
// never logged. A missing row is the default state, not an error.
func GetIntake(userID uint, day time.Time) (int, error) {
	start := dayStartLocal(day)

	var rec models.IntakeRecord
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rec.AmountOz, nil
}

// ResetIntake zeroes the day. The row stays; only its amount changes.
func ResetIntake(userID uint, day time.Time) error {
	return RecordIntake(userID, day, 0)
}

// QueryRange returns logged amounts for days in [start, end]
// inclusive, keyed by local-midnight date. Days without a record are
// absent from the map.
func QueryRange(userID uint, start, end time.Time) (map[time.Time]int, error) {
	from := dayStartLocal(start)
	to := dayStartLocal(end)

	var recs []models.IntakeRecord
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date asc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make(map[time.Time]int, len(recs))
	for _, r := range recs {
		out[dayStartLocal(r.Date)] = r.AmountOz
	}
	return out, nil
}
