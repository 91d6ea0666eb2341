package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// GetAllReservations handles GET requests to list reservations,
// optionally filtered by reader
func (c *ReservationController) GetAllReservations(ctx *gin.Context) {
	if readerParam := ctx.Query("readerId"); readerParam != "" {
		readerId, err := strconv.Atoi(readerParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
			return
		}
		reservations, err := c.service.GetReservationsByReader(readerId)
		if err != nil {
			ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, reservations)
		return
	}

	reservations, err := c.service.GetAllReservations()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reservations)
}

// CreateReservation handles POST requests to reserve a title for a reader
func (c *ReservationController) CreateReservation(ctx *gin.Context) {
	var req struct {
		ReaderId    int `json:"readerId"`
		BookTitleId int `json:"bookTitleId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := c.service.Reserve(req.ReaderId, req.BookTitleId)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, reservation)
}

// CancelReservation handles DELETE requests to withdraw a reservation
func (c *ReservationController) CancelReservation(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}
	if err := c.service.Cancel(id); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
