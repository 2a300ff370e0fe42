package movies

import (
	"github.com/gin-gonic/gin"
)

// SetupMovieRoutes configures all catalog routes
func SetupMovieRoutes(rg *gin.RouterGroup, controller *Controller) {
	movies := rg.Group("/movies")
	{
		movies.GET("", controller.ListMovies) // GET /api/v1/movies
		movies.GET("/:id", controller.GetMovie) // GET /api/v1/movies/:id
	}
}
