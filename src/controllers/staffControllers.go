package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/models"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type StaffController struct {
	service *services.StaffService
}

func NewStaffController(service *services.StaffService) *StaffController {
	return &StaffController{service: service}
}

// GetAllStaff handles GET requests to retrieve all staff accounts
func (c *StaffController) GetAllStaff(ctx *gin.Context) {
	staff, err := c.service.GetAllStaff()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, staff)
}

// CreateStaff handles POST requests to register a staff account
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var staff models.StaffModel
	if err := ctx.ShouldBindJSON(&staff); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateStaff(&staff)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, models.RegisterResponse{ID: created.Id, Username: created.Username})
}

// DeleteStaff handles DELETE requests to remove a staff account by its ID
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}
	if err := c.service.DeleteStaff(id); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// AuthenticateStaff handles POST requests to log a staff member in
func (c *StaffController) AuthenticateStaff(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.AuthenticateStaff(req.Username, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
