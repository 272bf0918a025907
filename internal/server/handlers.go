package server

import (
	"net/http"

	"github.com/First008/searchsizer/internal/sizing"
	"github.com/gin-gonic/gin"
)

// EstimateRequest is the request body for the /estimate endpoint
type EstimateRequest struct {
	LexicalSizing          sizing.SchemaConfig `json:"lexical_sizing"`
	VectorSizing           sizing.SchemaConfig `json:"vector_sizing"`
	ReindexSpaceMultiplier float64             `json:"reindex_space_multiplier,omitempty"`
}

// ErrorResponse is the response body for errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleEstimate handles POST /estimate requests
func (s *Server) handleEstimate(c *gin.Context) {
	var req EstimateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := sizing.Estimate(req.LexicalSizing, req.VectorSizing, req.ReindexSpaceMultiplier)
	if err != nil {
		// Estimation only fails on invalid configuration, so the caller
		// gets a 400, not a 500.
		s.logger.Warn().Err(err).Msg("Estimate failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid sizing configuration: " + err.Error(),
		})
		return
	}

	estimatesTotal.WithLabelValues(result.SuggestedInstance).Inc()

	c.JSON(http.StatusOK, result)
}

// CatalogResponse is the response body for /catalog
type CatalogResponse struct {
	Instances []sizing.InstanceSpec `json:"instances"`
	Count     int                   `json:"count"`
}

// handleCatalog handles GET /catalog requests
func (s *Server) handleCatalog(c *gin.Context) {
	instances := sizing.Catalog()

	c.JSON(http.StatusOK, CatalogResponse{
		Instances: instances,
		Count:     len(instances),
	})
}

// HealthResponse is the response body for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth handles GET /health requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}
