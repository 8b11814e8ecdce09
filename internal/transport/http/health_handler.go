package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codesync/codesync-server/internal/core"
)

// HealthHandler reports service status and hub occupancy.
type HealthHandler struct {
	hub *core.Hub
}

// NewHealthHandler creates a new health handler instance.
func NewHealthHandler(hub *core.Hub) *HealthHandler {
	return &HealthHandler{hub: hub}
}

// HealthResponse represents the health check response body.
type HealthResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	ActiveDocuments int    `json:"activeDocuments"`
	TotalUsers      int    `json:"totalUsers"`
}

// Health handles the health check.
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	rooms, connections := h.hub.Stats()
	c.JSON(http.StatusOK, HealthResponse{
		Status:          "ok",
		Message:         "CodeSync API is running!",
		ActiveDocuments: rooms,
		TotalUsers:      connections,
	})
}
