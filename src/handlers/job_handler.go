package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/response"
	"github.com/openlance/marketplace-go/src/services"
	"github.com/openlance/marketplace-go/src/utils"
)

type JobHandler struct {
	service      *services.JobService
	applications *services.ApplicationService
}

func NewJobHandler(service *services.JobService, applications *services.ApplicationService) *JobHandler {
	return &JobHandler{service: service, applications: applications}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var input dto.CreateJobDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	job, err := h.service.CreateJob(userID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: job})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	job, err := h.service.GetJob(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: job})
}

func (h *JobHandler) UpdateWorkers(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateWorkersDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	job, err := h.service.UpdateWorkersNeeded(id, userID, input.WorkersNeeded)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: job})
}

// GetAvailability returns the admission verdict for the acting user.
func (h *JobHandler) GetAvailability(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	availability, err := h.applications.CheckAvailability(id, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: availability})
}
