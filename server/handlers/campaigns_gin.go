package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "crmserver/server/errors"
	"crmserver/server/services"
)

// CampaignHandler serves campaign template listing and link previews.
type CampaignHandler struct {
	templateService *services.TemplateService
}

// NewCampaignHandler creates a campaign handler.
func NewCampaignHandler(templateService *services.TemplateService) *CampaignHandler {
	return &CampaignHandler{templateService: templateService}
}

// TemplateListResponse is the campaign template listing.
type TemplateListResponse struct {
	Templates []services.RenderedTemplate `json:"templates"`
	Total     int                         `json:"total"`
}

// HandleListTemplates lists the campaign message templates.
// @Summary List campaign templates
// @Description Returns the available campaign message templates, each with a preview rendered for a sample contact
// @Tags campaigns
// @Produce json
// @Success 200 {object} TemplateListResponse "Campaign templates"
// @Failure 503 {object} ErrorResponse "Template source unavailable"
// @Router /api/campaigns/templates [get]
func (h *CampaignHandler) HandleListTemplates(c *gin.Context) {
	templates, err := h.templateService.Templates(c.Request.Context())
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to load campaign templates")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, TemplateListResponse{
		Templates: templates,
		Total:     len(templates),
	})
}

// LinkPreviewRequest carries the URL to preview.
type LinkPreviewRequest struct {
	URL string `json:"url"`
}

// HandleLinkPreview fetches title and description metadata for a URL.
// @Summary Preview a link
// @Description Fetches the page behind a URL pasted into a campaign message and returns its title, description and image metadata
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body LinkPreviewRequest true "URL to preview"
// @Success 200 {object} campaigns.LinkPreview "Link metadata"
// @Failure 400 {object} ErrorResponse "Invalid URL"
// @Failure 429 {object} ErrorResponse "Too many preview requests"
// @Failure 503 {object} ErrorResponse "Page could not be fetched"
// @Router /api/campaigns/link-preview [post]
func (h *CampaignHandler) HandleLinkPreview(c *gin.Context) {
	var req LinkPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	preview, err := h.templateService.LinkPreview(c.Request.Context(), req.URL)
	if err != nil {
		appErr := apperrors.WrapError(err, "failed to build link preview")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, preview)
}
