package bookings

import (
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Booking creation lives under the showtime it targets
	showtimes := rg.Group("/showtimes")
	showtimes.Use(middleware.JWTAuthWithConfig(cfg))
	{
		showtimes.POST("/:id/bookings", controller.BookSeats) // POST /api/v1/showtimes/:id/bookings
	}

	// Booking history
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookings.GET("", controller.GetUserBookings) // GET /api/v1/bookings
		bookings.GET("/:id", controller.GetBooking)  // GET /api/v1/bookings/:id
	}
}
