package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "Phong Kham Tam Than Kinh API"
	Version     = "1.0.0"
)

// Handler contains dependencies shared by the top-level routes.
type Handler struct{}

// NewHandler creates a new handler instance
func NewHandler() *Handler {
	return &Handler{}
}

// HealthCheck is the liveness probe at GET /.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   ServiceName,
		"version":   Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
