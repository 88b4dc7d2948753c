package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks that the state backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	storage   Pinger
	backend   string
	generator bool
}

// NewHealthHandler creates a new health handler. backend names the configured
// state backend; generator reports whether a generation provider is configured.
func NewHealthHandler(storage Pinger, backend string, generator bool) *HealthHandler {
	return &HealthHandler{
		storage:   storage,
		backend:   backend,
		generator: generator,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including state storage connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	if err := h.storage.Ping(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Services["storage"] = "error: " + err.Error()
	} else {
		response.Services["storage"] = "healthy (" + h.backend + ")"
	}

	// the app works without a provider, only generation is disabled
	if h.generator {
		response.Services["generation"] = "configured"
	} else {
		response.Services["generation"] = "not configured"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the state storage is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if err := h.storage.Ping(c.Request.Context()); err != nil {
		ready = false
		services["storage"] = "not ready: " + err.Error()
	} else {
		services["storage"] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
