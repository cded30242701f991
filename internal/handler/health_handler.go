package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/infrastructure/database"
	"tech-oh/internal/logger"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	store database.Pinger
}

// NewHealthHandler creates a HealthHandler that probes the article store.
func NewHealthHandler(store database.Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *HealthHandler) probeStore(ctx context.Context) bool {
	if err := database.HealthCheck(ctx, h.store, healthCheckTimeout); err != nil {
		logger.WarnContext(ctx, "article store probe failed", "error", err)
		return false
	}
	return true
}

// Health reports the state of every dependency. The version is only shown when all are up.
func (h *HealthHandler) Health(c *gin.Context) {
	if !h.probeStore(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   statusUnhealthy,
			Services: map[string]string{"database": statusUnhealthy},
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   statusHealthy,
		Version:  apiVersion,
		Services: map[string]string{"database": statusHealthy},
	})
}

// Ready succeeds only while the article store answers.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.probeStore(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live never touches the store.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
