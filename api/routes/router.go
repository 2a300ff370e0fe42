package routes

import (
	"cinebook/internal/admin"
	"cinebook/internal/auth"
	"cinebook/internal/bookings"
	"cinebook/internal/movies"
	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	movieRepo movies.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Movie routes register the shared movie repository first since
		// seat maps and bookings resolve showtimes through it
		r.setupMovieRoutes(api)
		r.setupShowtimeRoutes(api)
		r.setupBookingRoutes(api)
		r.setupAuthRoutes(api)
		r.setupAdminRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinebook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupMovieRoutes configures the movie catalog routes
func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	movieRepo := movies.NewRepository(r.db.GetPostgreSQL())
	movieService := movies.NewService(movieRepo)
	movieController := movies.NewController(movieService)

	// Keep the repository around for seat map and booking wiring
	r.movieRepo = movieRepo

	movies.SetupMovieRoutes(rg, movieController)
}

// setupShowtimeRoutes configures the seat map routes
func (r *Router) setupShowtimeRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatRepo, r.movieRepo)
	seatController := seats.NewController(seatService)

	seats.SetupShowtimeRoutes(rg, seatController)
}

// setupBookingRoutes configures booking routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, r.movieRepo)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController, r.config)
}

// setupAdminRoutes configures admin-only operational routes
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	adminService := admin.NewService(r.movieRepo, bookings.NewRepository(r.db.GetPostgreSQL()))
	adminController := admin.NewController(adminService)

	admin.SetupAdminRoutes(rg, adminController, r.config)
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}
