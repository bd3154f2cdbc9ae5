package services

import (
	"errors"
	"math"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"
)

// ErrInvalidWeight is returned when a submitted weight cannot produce a
// daily goal. The caller surfaces it as a validation failure; nothing
// is persisted.
var ErrInvalidWeight = errors.New("weight must be a positive number")

// ComputeDailyGoal maps body weight in pounds to a daily water goal in
// ounces: half the weight, rounded up.
func ComputeDailyGoal(weightLbs float64) (int, error) {
	if weightLbs <= 0 || math.IsNaN(weightLbs) || math.IsInf(weightLbs, 0) {
		return 0, ErrInvalidWeight
	}
	return int(math.Ceil(weightLbs / 2)), nil
}

// SetWeight stores the user's weight and the recomputed goal, and
// clears the new-user flag once goal-setting has happened.
func SetWeight(userID uint, weightLbs float64) (int, error) {
	goal, err := ComputeDailyGoal(weightLbs)
	if err != nil {
		return 0, err
	}

	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return 0, errors.New("user not found or disabled")
	}

	user.WeightLbs = weightLbs
	user.DailyGoalOz = goal

	if err := config.DB.Save(&user).Error; err != nil {
		return 0, err
	}
	return goal, nil
}

// CompleteOnboarding flips the persisted new-user flag after the first
// goal-setting finishes.
func CompleteOnboarding(userID uint) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_new_user", false).Error
}
