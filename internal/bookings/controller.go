package bookings

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

// BookSeats handles POST /api/v1/showtimes/:id/bookings
func (c *Controller) BookSeats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	showtimeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	var req BookSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Please select at least one seat", nil, err.Error())
		return
	}

	booking, err := c.service.BookSeats(ctx.Request.Context(), userID, showtimeID, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptySeatSelection):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Please select at least one seat", nil, nil)
		case errors.Is(err, movies.ErrShowtimeNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
		case errors.Is(err, ErrSeatsUnavailable):
			response.RespondJSON(ctx, "error", http.StatusConflict,
				"One or more selected seats are no longer available. Please try again.", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to book seats", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed successfully", booking.ToResponse(), nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get booking", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// GetUserBookings handles GET /api/v1/bookings
func (c *Controller) GetUserBookings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookings, err := c.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	}, nil)
}

// currentUserID resolves the authenticated user id set by the JWT middleware.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userIDValue, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDValue.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
