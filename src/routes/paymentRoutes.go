package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(router *gin.Engine, service *services.PaymentService) {

	paymentController := controllers.NewPaymentController(service)

	// Protected routes
	payment := router.Group("/payments")
	payment.Use(middleware.AuthMiddleware())
	{
		payment.GET("/", paymentController.GetPayments)
	}
}
