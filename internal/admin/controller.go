package admin

import (
	"net/http"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetStats handles GET /api/v1/admin/stats
func (c *Controller) GetStats(ctx *gin.Context) {
	stats, err := c.service.GetStats(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get stats", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Stats retrieved successfully", stats, nil)
}
