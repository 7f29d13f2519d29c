package services

import (
	"context"
	"errors"
	"strings"

	"crmserver/campaigns"
	apperrors "crmserver/server/errors"
)

// sampleContactName personalizes template previews before a real
// contact is selected.
const sampleContactName = "Rajesh"

// LinkPreviewer fetches link metadata for campaign messages.
// Implemented by campaigns.PreviewClient.
type LinkPreviewer interface {
	Preview(ctx context.Context, rawURL string) (*campaigns.LinkPreview, error)
}

// RenderedTemplate is a campaign template plus its body rendered with a
// sample contact name, so the UI can show the message as a recipient
// would see it.
type RenderedTemplate struct {
	campaigns.MessageTemplate
	Preview string `json:"preview"`
}

// TemplateService serves campaign message templates and link previews.
type TemplateService struct {
	source    campaigns.TemplateSource
	previewer LinkPreviewer
	logger    LoggerInterface
}

// NewTemplateService creates a template service. A nil source falls
// back to the built-in template set; a nil previewer disables link
// previews.
func NewTemplateService(source campaigns.TemplateSource, previewer LinkPreviewer) *TemplateService {
	if source == nil {
		source = campaigns.NewStaticTemplateSource()
	}
	return &TemplateService{
		source:    source,
		previewer: previewer,
		logger:    newDefaultLogger(),
	}
}

// NewTemplateServiceWithLogger creates a template service with a custom
// logger, used by tests.
func NewTemplateServiceWithLogger(source campaigns.TemplateSource, previewer LinkPreviewer, logger LoggerInterface) *TemplateService {
	service := NewTemplateService(source, previewer)
	if logger != nil {
		service.logger = logger
	}
	return service
}

// Templates lists the available campaign templates, each with a sample
// rendering of its body.
func (s *TemplateService) Templates(ctx context.Context) ([]RenderedTemplate, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	templates, err := s.source.Templates(ctx)
	if err != nil {
		s.logger.Error("Failed to load campaign templates", "error", err)
		return nil, apperrors.NewServiceUnavailableError("campaign templates are currently unavailable", err)
	}

	rendered := make([]RenderedTemplate, 0, len(templates))
	for _, tmpl := range templates {
		rendered = append(rendered, RenderedTemplate{
			MessageTemplate: tmpl,
			Preview:         campaigns.Render(tmpl.Body, sampleContactName),
		})
	}
	return rendered, nil
}

// LinkPreview fetches title and description metadata for a URL pasted
// into a campaign message.
func (s *TemplateService) LinkPreview(ctx context.Context, rawURL string) (*campaigns.LinkPreview, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	if s.previewer == nil {
		return nil, apperrors.NewServiceUnavailableError("link previews are not configured", nil)
	}
	if strings.TrimSpace(rawURL) == "" {
		return nil, apperrors.NewValidationError("url is required", nil)
	}

	preview, err := s.previewer.Preview(ctx, rawURL)
	if err != nil {
		if errors.Is(err, campaigns.ErrInvalidURL) {
			return nil, apperrors.NewValidationError("url must be an absolute http or https address", err)
		}
		if errors.Is(err, campaigns.ErrRateLimited) {
			return nil, apperrors.NewRateLimitError("too many link preview requests, try again shortly", err)
		}
		s.logger.Warn("Link preview fetch failed", "url", rawURL, "error", err)
		return nil, apperrors.NewServiceUnavailableError("could not fetch a preview for this link", err)
	}
	return preview, nil
}
