package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/skillgap/models"
	"github.com/myjobmatch/skillgap/taxonomy"
	"github.com/myjobmatch/skillgap/tools"
)

// SystemHandler serves health and introspection endpoints
type SystemHandler struct {
	version  string
	taxonomy *taxonomy.Taxonomy
	registry *tools.ToolRegistry
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(version string, tx *taxonomy.Taxonomy, registry *tools.ToolRegistry) *SystemHandler {
	return &SystemHandler{
		version:  version,
		taxonomy: tx,
		registry: registry,
	}
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and how many roles it serves
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Roles:     len(h.taxonomy.RoleNames()),
	})
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of available tools"
// @Router /tools [get]
func (h *SystemHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.GetDefinitions(),
	})
}
