package routes

import (
	"github.com/iffanyt/ChugCheck/controllers"
	"github.com/iffanyt/ChugCheck/middlewares"
	"github.com/iffanyt/ChugCheck/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/weight", controllers.UpdateWeight)
		user.POST("/onboarded", controllers.CompleteOnboarding)
		user.GET("/alerts", controllers.GetAlerts)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	if ps != nil {
		dc := controllers.NewDeviceController(ps)
		user.POST("/devices", dc.RegisterDevice)
	}

	intake := r.Group("/intake")
	intake.Use(middlewares.AuthMiddleware())
	{
		intake.GET("/today", controllers.GetTodayIntake)
		intake.PUT("/today", controllers.SetTodayIntake)
		intake.POST("/reset", controllers.ResetTodayIntake)
		intake.GET("/history", controllers.GetIntakeHistory)
	}

	rc := controllers.NewRealtimeController(rt)
	r.GET("/ws/alerts", middlewares.AuthMiddleware(), rc.AlertsWS)

	return r
}
