package routes

import (
	"net/http"

	"gameshelf/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, gameHandler *handlers.GameHandler) {
	// API routes
	api := router.Group("/api")
	{
		games := api.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.POST("", gameHandler.CreateGame)
			// Register before :id so "search" is not parsed as an id.
			games.GET("/search", gameHandler.SearchGames)
			games.GET("/:id", gameHandler.GetGameByID)
			games.PUT("/:id", gameHandler.UpdateGame)
			games.DELETE("/:id", gameHandler.DeleteGame)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
