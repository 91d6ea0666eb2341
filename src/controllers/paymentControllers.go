package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// GetPayments handles GET requests to list payments, filtered by
// ?cardId=&from=&to= (dates as 2006-01-02)
func (c *PaymentController) GetPayments(ctx *gin.Context) {
	var filter services.PaymentFilter

	if cardParam := ctx.Query("cardId"); cardParam != "" {
		cardId, err := strconv.Atoi(cardParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
			return
		}
		filter.CardId = &cardId
	}

	const layout = "2006-01-02"
	if fromParam := ctx.Query("from"); fromParam != "" {
		from, err := time.Parse(layout, fromParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		filter.From = &from
	}
	if toParam := ctx.Query("to"); toParam != "" {
		to, err := time.Parse(layout, toParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
		// Include the whole end day
		to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filter.To = &to
	}

	payments, err := c.service.GetPayments(filter)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, payments)
}
