package controllers

import (
	"errors"
	"net/http"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"
	"github.com/iffanyt/ChugCheck/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":       user.UserID,
		"email":         user.Email,
		"weight_lbs":    user.WeightLbs,
		"daily_goal_oz": user.DailyGoalOz,
		"is_new_user":   user.IsNewUser,
	})
}

// UpdateWeight recomputes the daily goal from a resubmitted weight.
func UpdateWeight(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		WeightLbs float64 `json:"weight_lbs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.SetWeight(uid, req.WeightLbs)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeight) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_goal_oz": goal})
}

// CompleteOnboarding flips the new-user flag once the first
// goal-setting is done.
func CompleteOnboarding(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.CompleteOnboarding(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
