// Package api serves the CPU status report over HTTP for remote bars
// and debugging. The one-shot stdout path in main is the primary surface;
// this server wraps the same collector.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/TomLaclavere/HyDE/internal/config"
	"github.com/TomLaclavere/HyDE/internal/platform"
	"github.com/TomLaclavere/HyDE/internal/status"
)

// Server represents the API server
type Server struct {
	app       *fiber.App
	collector *status.Collector
}

// NewServer creates a new API server around the platform collector.
func NewServer(cfg config.Config) (*Server, error) {
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ServerHeader: "hyde-cpuinfo",
		AppName:      "HyDE cpuinfo",
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	server := &Server{
		app:       app,
		collector: status.NewCollector(cfg),
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")
	api.Get("/cpuinfo", s.getCPUInfo)
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"platform":     platform.GetOS(),
		"raw_counters": platform.HasRawCounters(),
		"timestamp":    time.Now().Unix(),
	})
}
