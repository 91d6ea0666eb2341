package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService) {

	bookController := controllers.NewBookController(service)

	// Public catalog browsing
	router.GET("/booktitles", bookController.GetAllTitles)
	router.GET("/booktitles/:id", bookController.GetTitleByID)
	router.GET("/booktitles/:id/copies", bookController.GetCopiesByTitle)

	// Protected routes
	title := router.Group("/booktitles")
	title.Use(middleware.AuthMiddleware())
	{
		title.POST("/", bookController.CreateTitle)
		title.PUT("/:id", bookController.UpdateTitle)
		title.DELETE("/:id", bookController.DeleteTitle)
	}

	copy := router.Group("/bookcopies")
	copy.Use(middleware.AuthMiddleware())
	{
		copy.GET("/:id", bookController.GetCopyByID)
		copy.POST("/", bookController.CreateCopy)
		copy.DELETE("/:id", bookController.DeleteCopy)
	}
}
