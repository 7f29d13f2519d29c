package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crmserver/database"
)

// SystemHandler serves liveness checks.
type SystemHandler struct {
	db *database.ContactsDB
}

// NewSystemHandler creates a system handler.
func NewSystemHandler(db *database.ContactsDB) *SystemHandler {
	return &SystemHandler{db: db}
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HandleHealth reports process and database liveness.
// @Summary Health check
// @Description Returns ok when the process is up and the database answers a ping
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Service healthy"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Time:     time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if h.db == nil {
		response.Status = "degraded"
		response.Database = "not configured"
		status = http.StatusServiceUnavailable
	} else if err := h.db.Ping(); err != nil {
		response.Status = "degraded"
		response.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
