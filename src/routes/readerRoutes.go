package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReaderRoutes(router *gin.Engine, service *services.ReaderService) {

	readerController := controllers.NewReaderController(service)

	// Protected routes
	reader := router.Group("/readers")
	reader.Use(middleware.AuthMiddleware())
	{
		reader.GET("/", readerController.GetAllReaders)
		reader.GET("/:id", readerController.GetReaderByID)
		reader.POST("/", readerController.CreateReader)
		reader.PUT("/:id", readerController.UpdateReader)
		reader.DELETE("/:id", readerController.DeleteReader)
	}
}
