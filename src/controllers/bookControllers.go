package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	service *services.BookService
}

func NewBookController(service *services.BookService) *BookController {
	return &BookController{service: service}
}

// GetAllTitles handles GET requests to retrieve all book titles
func (c *BookController) GetAllTitles(ctx *gin.Context) {
	titles, err := c.service.GetAllTitles()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, titles)
}

// GetTitleByID handles GET requests to retrieve a book title by its ID
func (c *BookController) GetTitleByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid title ID"})
		return
	}

	title, err := c.service.GetTitleByID(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, title)
}

// CreateTitle handles POST requests to create a new book title
func (c *BookController) CreateTitle(ctx *gin.Context) {
	var title models.BookTitleModel
	if err := ctx.ShouldBindJSON(&title); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateTitle(&title)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateTitle handles PUT requests to update an existing book title
func (c *BookController) UpdateTitle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid title ID"})
		return
	}

	var title models.BookTitleModel
	if err := ctx.ShouldBindJSON(&title); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.service.UpdateTitle(id, &title)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteTitle handles DELETE requests to remove a book title by its ID
func (c *BookController) DeleteTitle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid title ID"})
		return
	}
	if err := c.service.DeleteTitle(id); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetCopiesByTitle handles GET requests to list a title's copies
func (c *BookController) GetCopiesByTitle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid title ID"})
		return
	}

	copies, err := c.service.GetCopiesByTitle(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, copies)
}

// GetCopyByID handles GET requests to retrieve a book copy by its ID
func (c *BookController) GetCopyByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid copy ID"})
		return
	}

	copy, err := c.service.GetCopyByID(id)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, copy)
}

// CreateCopy handles POST requests to add a copy of a title
func (c *BookController) CreateCopy(ctx *gin.Context) {
	var copy models.BookCopyModel
	if err := ctx.ShouldBindJSON(&copy); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateCopy(&copy)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// DeleteCopy handles DELETE requests to remove a book copy by its ID
func (c *BookController) DeleteCopy(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid copy ID"})
		return
	}
	if err := c.service.DeleteCopy(id); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
