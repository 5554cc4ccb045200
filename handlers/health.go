package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/tools"
)

// HealthHandler reports service status
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health returns the health status of the API
// @Summary Health check
// @Description Returns the health status of the API
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ToolsHandler lists the agent tools
type ToolsHandler struct {
	registry *tools.ToolRegistry
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(registry *tools.ToolRegistry) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// List returns the registered tool definitions
// @Summary List tools
// @Description Lists the tools available to agents through MCP
// @Tags Tools
// @Produce json
// @Success 200 {array} tools.Definition "Tool definitions"
// @Router /tools [get]
func (h *ToolsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Definitions())
}
