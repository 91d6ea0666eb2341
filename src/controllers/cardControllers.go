package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CardController struct {
	service *services.CardService
}

func NewCardController(service *services.CardService) *CardController {
	return &CardController{service: service}
}

// GetAllCards handles GET requests to retrieve all library cards
func (c *CardController) GetAllCards(ctx *gin.Context) {
	cards, err := c.service.GetAllCards()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, cards)
}

// GetCardByID handles GET requests to retrieve a library card by its ID
func (c *CardController) GetCardByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return
	}

	card, err := c.service.GetCardByID(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, card)
}

// IssueCard handles POST requests to issue a card to a reader
func (c *CardController) IssueCard(ctx *gin.Context) {
	var req struct {
		ReaderId int `json:"readerId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := c.service.IssueCard(req.ReaderId)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, card)
}

// Deposit handles POST requests to top up a card's deposit balance
func (c *CardController) Deposit(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return
	}

	var req services.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.Deposit(id, &req)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UpdateStatus handles PATCH requests to change a card's status
func (c *CardController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return
	}

	var req struct {
		Status models.CardStatus `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := c.service.UpdateStatus(id, req.Status)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, card)
}
