package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLoanRoutes(router *gin.Engine, loans *services.LoanService, renewals *services.RenewalService, returns *services.ReturnService) {

	loanController := controllers.NewLoanController(loans, renewals, returns)

	// Protected routes
	loan := router.Group("/loans")
	loan.Use(middleware.AuthMiddleware())
	{
		loan.GET("/", loanController.GetAllLoans)
		loan.GET("/:id", loanController.GetLoanByID)
		loan.POST("/", loanController.CreateLoan)
		loan.GET("/:id/renewal", loanController.CheckRenewal)
		loan.POST("/:id/renew", loanController.RenewLoan)
		loan.POST("/:id/return", loanController.ReturnBooks)
	}
}
