package services

import (
	"fmt"
	"time"

	"github.com/iffanyt/ChugCheck/models"

	"gorm.io/gorm"
)

type celebrationDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _celebration celebrationDeps

func InitCelebrationDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_celebration = celebrationDeps{db: db, rt: rt, ps: ps}
}

// MaybeCelebrate emits a goal-reached alert when a saved day total
// crosses the user's goal. Writes that stay above the goal (or never
// reach it) emit nothing, so one crossing means one alert.
func MaybeCelebrate(user *models.User, prevOz, newOz int) {
	if user.DailyGoalOz <= 0 {
		return
	}
	if prevOz >= user.DailyGoalOz || newOz < user.DailyGoalOz {
		return
	}
	emitGoalReached(user.ID, newOz, user.DailyGoalOz)
}

func emitGoalReached(userID uint, amountOz, goalOz int) { // safe to call anywhere
	if _celebration.db == nil {
		return // not initialized
	}
	msg := fmt.Sprintf("Goal achieved! %d oz of %d oz logged today.", amountOz, goalOz)
	a := &models.Alert{UserID: userID, Type: "goal_reached", Message: msg, CreatedAt: time.Now()}
	_ = _celebration.db.Create(a).Error

	if _celebration.rt != nil {
		_celebration.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _celebration.ps != nil {
		_celebration.ps.PushToUser(userID, "Goal Achieved!", msg, map[string]string{
			"type": "goal_reached", "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := _celebration.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
