package main

import (
	"log"

	"gameshelf/config"
	"gameshelf/handlers"
	"gameshelf/middleware"
	"gameshelf/repository"
	"gameshelf/routes"
	"gameshelf/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repository, service and handlers
	gameRepo := repository.NewGameRepository(db)
	gameService := services.NewGameService(gameRepo)
	gameHandler := handlers.NewGameHandler(gameService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Setup routes
	routes.SetupRoutes(router, gameHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
