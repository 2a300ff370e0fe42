package seats

import (
	"errors"
	"net/http"

	"cinebook/internal/movies"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetShowtime handles GET /api/v1/showtimes/:id
func (c *Controller) GetShowtime(ctx *gin.Context) {
	showtimeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	seatMap, err := c.service.GetSeatMap(ctx.Request.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, movies.ErrShowtimeNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get seat map", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}
