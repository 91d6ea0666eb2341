package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupStaffRoutes(router *gin.Engine, service *services.StaffService) {
	staffController := controllers.NewStaffController(service)

	// Public routes
	router.POST("/login", staffController.AuthenticateStaff)
	router.POST("/register", staffController.CreateStaff)

	// Protected routes
	staff := router.Group("/staff")
	staff.Use(middleware.AuthMiddleware())
	{
		staff.GET("/", staffController.GetAllStaff)
		staff.DELETE("/:id", staffController.DeleteStaff)
	}
}
