package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crmserver/database"
	apperrors "crmserver/server/errors"
	"crmserver/server/services"
)

// DashboardHandler serves the dashboard summary and import history.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// HandleDashboardSummary returns the dashboard landing view.
// @Summary Dashboard summary
// @Description Returns the contact total, the canonical tag distribution and the most recent import batches
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardSummary "Dashboard summary"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) HandleDashboardSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to build dashboard summary")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, summary)
}

// ImportHistoryResponse is one page of import batch summaries.
type ImportHistoryResponse struct {
	Imports []database.BatchSummary `json:"imports"`
	Total   int                     `json:"total"`
}

// HandleImportHistory returns recent import batches.
// @Summary Recent import batches
// @Description Returns summaries of the most recent import batches, newest first
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of batches (default 10, max 50)"
// @Success 200 {object} ImportHistoryResponse "Recent imports"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/imports [get]
func (h *DashboardHandler) HandleImportHistory(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	batches, err := h.dashboardService.ImportHistory(c.Request.Context(), limit)
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to load import history")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, ImportHistoryResponse{
		Imports: batches,
		Total:   len(batches),
	})
}
