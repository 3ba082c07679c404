package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"shelftrack/internal/config"
	"shelftrack/internal/handlers"
	"shelftrack/internal/repositories"
	"shelftrack/internal/services"
	"shelftrack/pkg/database"
	"shelftrack/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	db, err := database.Open(cfg.DB.Path())
	if err != nil {
		zl.Fatal().Err(err).Str("path", cfg.DB.Path()).Msg("failed to open database")
	}
	defer db.Close()

	// Create repositories and services
	itemRepo := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepo)

	// Create handlers
	itemHandlers, err := handlers.NewItemHandlers(itemService, zl)
	if err != nil {
		zl.Fatal().Err(err).Msg("failed to build handlers")
	}
	healthHandlers := handlers.NewHealthHandlers(db)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Page routes
	e.GET("/", itemHandlers.Index)
	e.POST("/items", itemHandlers.AddItem)
	e.POST("/items/update", itemHandlers.UpdateItem)
	e.POST("/items/delete", itemHandlers.DeleteItem)

	// API routes
	api := e.Group("/api")
	api.GET("/items", itemHandlers.ListItems)
	api.POST("/items", itemHandlers.CreateItem)
	api.GET("/items/:id", itemHandlers.GetItem)
	api.PUT("/items/:id", itemHandlers.UpdateItemJSON)
	api.DELETE("/items/:id", itemHandlers.DeleteItemJSON)

	zl.Info().Str("version", version).Str("addr", cfg.HTTP.Addr).Str("db", cfg.DB.Path()).Msg("shelftrack starting")

	e.Logger.Fatal(e.Start(cfg.HTTP.Addr))
}
