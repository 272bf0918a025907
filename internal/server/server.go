// Package server provides the HTTP API for the sizing estimator.
//
// The server package implements REST API endpoints using Gin framework:
// estimation, the instance catalog, health checks, and Prometheus metrics.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server is the HTTP server for the estimator
type Server struct {
	port   int
	logger zerolog.Logger
	engine *gin.Engine
}

// New creates a new HTTP server
func New(port int, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// Add logging middleware
	engine.Use(ginLogger(logger))

	// Add metrics middleware
	engine.Use(metricsMiddleware())

	// Add recovery middleware
	engine.Use(gin.Recovery())

	server := &Server{
		port:   port,
		logger: logger,
		engine: engine,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check
	s.engine.GET("/health", s.handleHealth)

	// Instance catalog
	s.engine.GET("/catalog", s.handleCatalog)

	// Prometheus metrics
	s.engine.GET("/metrics", metricsHandler())

	// Run an estimate
	s.engine.POST("/estimate", s.handleEstimate)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info().
		Str("addr", addr).
		Msg("Starting HTTP server")

	return s.engine.Run(addr)
}

// ginLogger creates a Gin middleware that logs using zerolog
func ginLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Process request
		c.Next()

		// Log after processing
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}
