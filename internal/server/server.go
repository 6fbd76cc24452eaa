// Package server exposes layout generation over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// Options configures the fiber app.
type Options struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// New builds the app with all routes registered.
func New(h *LayoutHandler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		AppName:      opts.AppName,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(Logger())
	}

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", h.ReadinessProbe)

	// ============================================================
	// Layout Routes
	// ============================================================

	api := app.Group("/api/v1")
	api.Post("/layouts", h.Create)
	api.Get("/layouts", h.List)
	api.Get("/layouts/:id", h.Get)
	api.Get("/presets", h.Presets)

	return app
}
