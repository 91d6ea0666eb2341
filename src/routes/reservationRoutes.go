package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.Engine, service *services.ReservationService) {

	reservationController := controllers.NewReservationController(service)

	// Protected routes
	reservation := router.Group("/reservations")
	reservation.Use(middleware.AuthMiddleware())
	{
		reservation.GET("/", reservationController.GetAllReservations)
		reservation.POST("/", reservationController.CreateReservation)
		reservation.DELETE("/:id", reservationController.CancelReservation)
	}
}
