package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"
	"github.com/iffanyt/ChugCheck/services"

	"github.com/gin-gonic/gin"
)

// GetTodayIntake returns the day's logged total, 0 when nothing has
// been logged yet.
func GetTodayIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	amount, err := services.GetIntake(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount_oz": amount})
}

// SetTodayIntake stores the day's new cumulative total. The client
// does the adding; a write here always replaces the stored amount.
func SetTodayIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		AmountOz int `json:"amount_oz"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	prev, err := services.GetIntake(uid, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := services.RecordIntake(uid, now, req.AmountOz); err != nil {
		if errors.Is(err, services.ErrNegativeAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err == nil {
		services.MaybeCelebrate(&user, prev, req.AmountOz)
	}

	c.JSON(http.StatusOK, gin.H{"amount_oz": req.AmountOz})
}

func ResetTodayIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.ResetIntake(uid, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetIntakeHistory returns the logged days of one calendar month as a
// sparse YYYY-MM-DD → ounces map. Days never logged are absent.
func GetIntakeHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid 'year' query param"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid 'month' query param"})
		return
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)

	amounts, err := services.QueryRange(uid, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	days := make(map[string]int, len(amounts))
	for day, oz := range amounts {
		days[day.Format("2006-01-02")] = oz
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "days": days})
}
