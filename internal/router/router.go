package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/revcast/revcast/internal/config"
	"github.com/revcast/revcast/internal/handlers"
	"github.com/revcast/revcast/internal/logging"
	"github.com/revcast/revcast/internal/middleware"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg *config.Config) *handlers.Handler {
	// Create handler instance
	h := handlers.New(logger, cfg)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	// Revenue Entry Routes
	v1.Post("/entries", h.CreateEntry)
	v1.Get("/entries", h.ListEntries)
	v1.Get("/entries/:id", h.GetEntry)
	v1.Put("/entries/:id", h.UpdateEntry)
	v1.Delete("/entries/:id", h.DeleteEntry)

	// Forecast Routes
	v1.Get("/forecast", h.Forecast)
	v1.Post("/forecast", h.ForecastPost)
	v1.Get("/forecast/last", h.ForecastLast)
	v1.Get("/forecast/report", h.ForecastReport)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Revcast Server",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, cfg)

	return app
}
