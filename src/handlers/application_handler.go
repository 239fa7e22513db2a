package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/response"
	"github.com/openlance/marketplace-go/src/services"
	"github.com/openlance/marketplace-go/src/utils"
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.CreateApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	app, err := h.service.Apply(jobID, userID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: app})
}

func (h *ApplicationHandler) Accept(c *gin.Context) {
	h.ownerAction(c, h.service.Accept)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	h.ownerAction(c, h.service.Reject)
}

func (h *ApplicationHandler) Complete(c *gin.Context) {
	h.ownerAction(c, h.service.Complete)
}

func (h *ApplicationHandler) ownerAction(c *gin.Context, action func(appID, actorID uint) (*models.Application, error)) {
	appID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	app, err := action(appID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: app})
}
