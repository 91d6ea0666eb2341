package controllers

import (
	"net/http"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GetSummary handles GET requests for the circulation summary
func (c *ReportController) GetSummary(ctx *gin.Context) {
	summary, err := c.service.GetCirculationSummary()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// ExportLoans handles GET requests to download the loan ledger as xlsx
func (c *ReportController) ExportLoans(ctx *gin.Context) {
	f, err := c.service.ExportLoanLedger()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	ctx.Header("Content-Disposition", `attachment; filename="loan-ledger.xlsx"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}
