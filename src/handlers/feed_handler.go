package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/response"
	"github.com/openlance/marketplace-go/src/services"
)

type FeedHandler struct {
	service *services.FeedService
}

func NewFeedHandler(service *services.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// GetFeed serves the ranked open-jobs feed. Under time_rotation this
// request stamps front-page exposure as a side effect.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var query dto.FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	feed, err := h.service.GetFeed(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// PreviewFeed ranks without recording front-page exposure.
func (h *FeedHandler) PreviewFeed(c *gin.Context) {
	var query dto.FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	feed, err := h.service.Preview(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, feed)
}
