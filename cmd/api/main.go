package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"saas-forecast/internal/api/handlers"
	"saas-forecast/internal/api/middleware"
	"saas-forecast/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	resultTTL := time.Hour
	if ttlStr := os.Getenv("RESULT_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			resultTTL = parsed
		} else {
			log.Printf("Invalid RESULT_TTL %q, using %s", ttlStr, resultTTL)
		}
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers; completed forecasts stay referencable until the TTL.
	results := store.NewResultCache(resultTTL)
	forecastHandler := handlers.NewForecastHandler(results)
	scenarioHandler := handlers.NewScenarioHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/forecast", forecastHandler.RunForecast)
		api.GET("/forecast/:id/runs", forecastHandler.GetRuns)
		api.GET("/forecast/:id/bands", forecastHandler.GetBands)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/metrics", handlers.ListMetrics)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
