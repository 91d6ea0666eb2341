package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCardRoutes(router *gin.Engine, service *services.CardService) {

	cardController := controllers.NewCardController(service)

	// Protected routes
	card := router.Group("/cards")
	card.Use(middleware.AuthMiddleware())
	{
		card.GET("/", cardController.GetAllCards)
		card.GET("/:id", cardController.GetCardByID)
		card.POST("/", cardController.IssueCard)
		card.POST("/:id/deposit", cardController.Deposit)
		card.PATCH("/:id/status", cardController.UpdateStatus)
	}
}
