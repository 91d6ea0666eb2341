package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSettingRoutes(router *gin.Engine, service *services.SettingService) {

	settingController := controllers.NewSettingController(service)

	// Protected routes
	setting := router.Group("/settings")
	setting.Use(middleware.AuthMiddleware())
	{
		setting.GET("/", settingController.GetAllSettings)
		setting.PUT("/", settingController.SetSetting)
	}
}
