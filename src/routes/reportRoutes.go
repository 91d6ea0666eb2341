package routes

import (
	"github.com/BiblioCore/BiblioCore-Backend/src/controllers"
	"github.com/BiblioCore/BiblioCore-Backend/src/middleware"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.Engine, service *services.ReportService) {

	reportController := controllers.NewReportController(service)

	// Protected routes
	report := router.Group("/reports")
	report.Use(middleware.AuthMiddleware())
	{
		report.GET("/summary", reportController.GetSummary)
		report.GET("/loans/export", reportController.ExportLoans)
	}
}
