package controllers

import (
	"net/http"

	"github.com/BiblioCore/BiblioCore-Backend/src/apperrors"
	"github.com/BiblioCore/BiblioCore-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type SettingController struct {
	service *services.SettingService
}

func NewSettingController(service *services.SettingService) *SettingController {
	return &SettingController{service: service}
}

// GetAllSettings handles GET requests to list policy settings
func (c *SettingController) GetAllSettings(ctx *gin.Context) {
	settings, err := c.service.GetAllSettings()
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// SetSetting handles PUT requests to create or update a policy setting
func (c *SettingController) SetSetting(ctx *gin.Context) {
	var req struct {
		SettingName  string `json:"settingName"`
		SettingValue string `json:"settingValue"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := c.service.SetSetting(req.SettingName, req.SettingValue)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, setting)
}
