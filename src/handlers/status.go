package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/response"
	"github.com/openlance/marketplace-go/src/services"
)

// writeServiceError maps service outcomes onto HTTP statuses. Capacity
// exhaustion is a conflict the client should treat as "slots are gone",
// not a retryable server fault.
func writeServiceError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var capacity *services.CapacityError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "forbidden"})
	case errors.As(err, &capacity):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: capacity.Reason})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: validation.Reason})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
