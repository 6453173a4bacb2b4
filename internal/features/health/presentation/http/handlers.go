package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health check.
const ServiceName = "Marketing AI Hub"

// HealthHandler reports liveness. It never calls the model.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// GetHealthHandler handles GET /api/health.
func (h *HealthHandler) GetHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
		"service":   ServiceName,
	})
}
