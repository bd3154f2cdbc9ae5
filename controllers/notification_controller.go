package controllers

import (
	"net/http"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/models"
	"github.com/iffanyt/ChugCheck/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	PS *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{PS: ps}
}

// POST /user/devices
func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Platform string `json:"platform" binding:"required"`
		Token    string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	dev, err := dc.PS.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"device_id": dev.ID, "platform": dev.Platform})
}

// POST /user/notifications/toggle
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// GET /user/alerts
func GetAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := services.ListAlerts(uid, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}
