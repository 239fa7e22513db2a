package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/openlance/marketplace-go/src/config"
	"github.com/openlance/marketplace-go/src/db"
	"github.com/openlance/marketplace-go/src/middleware"
	"github.com/openlance/marketplace-go/src/routes"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(router, logger)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
