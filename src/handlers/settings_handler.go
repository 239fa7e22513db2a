package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/response"
	"github.com/openlance/marketplace-go/src/services"
)

type SettingsHandler struct {
	service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: settings})
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var input dto.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.service.Update(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: settings})
}
