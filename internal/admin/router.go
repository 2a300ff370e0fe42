package admin

import (
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes configures admin-only routes. Every route requires a
// valid access token carrying the admin flag.
func SetupAdminRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	adminGroup := rg.Group("/admin")
	adminGroup.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		adminGroup.GET("/stats", controller.GetStats) // GET /api/v1/admin/stats
	}
}
