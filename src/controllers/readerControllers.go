package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReaderController struct {
	service *services.ReaderService
}

func NewReaderController(service *services.ReaderService) *ReaderController {
	return &ReaderController{service: service}
}

// GetAllReaders handles GET requests to retrieve all reader records
func (c *ReaderController) GetAllReaders(ctx *gin.Context) {
	readers, err := c.service.GetAllReaders()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, readers)
}

// GetReaderByID handles GET requests to retrieve a reader by its ID
func (c *ReaderController) GetReaderByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	reader, err := c.service.GetReaderByID(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reader)
}

// CreateReader handles POST requests to create a new reader record
func (c *ReaderController) CreateReader(ctx *gin.Context) {
	var reader models.ReaderModel
	if err := ctx.ShouldBindJSON(&reader); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateReader(&reader)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateReader handles PUT requests to update an existing reader record
func (c *ReaderController) UpdateReader(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}

	var reader models.ReaderModel
	if err := ctx.ShouldBindJSON(&reader); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.service.UpdateReader(id, &reader)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteReader handles DELETE requests to remove a reader record by its ID
func (c *ReaderController) DeleteReader(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reader ID"})
		return
	}
	if err := c.service.DeleteReader(id); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
