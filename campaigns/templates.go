package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MessageTemplate is one reusable campaign message. The body may contain
// a {name} placeholder filled in at send time.
type MessageTemplate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Body     string `json:"body"`
}

// TemplateSource supplies the campaign templates offered to users.
type TemplateSource interface {
	Templates(ctx context.Context) ([]MessageTemplate, error)
}

// Render substitutes the {name} placeholder in a template body.
func Render(body, name string) string {
	return strings.ReplaceAll(body, "{name}", name)
}

var defaultTemplates = []MessageTemplate{
	{
		ID:       "welcome",
		Name:     "Welcome",
		Category: "onboarding",
		Body:     "Hi {name}, thank you for connecting with us! We will keep you posted on offers picked for you.",
	},
	{
		ID:       "personal-loan",
		Name:     "Personal Loan Offer",
		Category: "lending",
		Body:     "Dear {name}, you are pre-approved for a personal loan of up to Rs. 5,00,000 at 10.5% p.a. Reply YES to get a callback.",
	},
	{
		ID:       "credit-card",
		Name:     "Credit Card Upgrade",
		Category: "cards",
		Body:     "Hi {name}, your lifetime-free credit card is ready. Complete the application in 2 minutes to claim it.",
	},
	{
		ID:       "festive-offer",
		Name:     "Festive Season Offer",
		Category: "seasonal",
		Body:     "Happy festive season, {name}! Enjoy zero processing fees on all loans booked this week.",
	},
	{
		ID:       "payment-reminder",
		Name:     "Payment Reminder",
		Category: "service",
		Body:     "Dear {name}, a gentle reminder that your EMI is due in 3 days. Please keep your account funded to avoid late fees.",
	},
}

// StaticTemplateSource serves the built-in template set.
type StaticTemplateSource struct{}

// NewStaticTemplateSource returns a source backed by the built-in set.
func NewStaticTemplateSource() *StaticTemplateSource {
	return &StaticTemplateSource{}
}

// Templates returns a copy of the built-in templates.
func (s *StaticTemplateSource) Templates(ctx context.Context) ([]MessageTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	templates := make([]MessageTemplate, len(defaultTemplates))
	copy(templates, defaultTemplates)
	return templates, nil
}

// maxTemplateBody caps how much of a remote template response is read.
const maxTemplateBody = 1 << 20

// RemoteTemplateConfig configures a RemoteTemplateSource.
type RemoteTemplateConfig struct {
	URL       string
	Timeout   time.Duration
	RateLimit rate.Limit
	CacheTTL  time.Duration
	Fallback  TemplateSource
}

// RemoteTemplateSource fetches templates as JSON from a configured URL.
// Responses are cached for CacheTTL; on any fetch failure the fallback
// source (the static set by default) answers instead, so template
// listing never breaks because the remote endpoint is down.
type RemoteTemplateSource struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	cacheTTL   time.Duration
	fallback   TemplateSource

	mu      sync.RWMutex
	cached  []MessageTemplate
	expires time.Time
}

// NewRemoteTemplateSource creates a remote source with sensible defaults.
func NewRemoteTemplateSource(config RemoteTemplateConfig) *RemoteTemplateSource {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = rate.Every(time.Second)
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 5 * time.Minute
	}
	if config.Fallback == nil {
		config.Fallback = NewStaticTemplateSource()
	}

	return &RemoteTemplateSource{
		url: config.URL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter:  rate.NewLimiter(config.RateLimit, 1),
		cacheTTL: config.CacheTTL,
		fallback: config.Fallback,
	}
}

// Templates returns the remote template set, served from cache when
// fresh and from the fallback source when the remote fetch fails.
func (s *RemoteTemplateSource) Templates(ctx context.Context) ([]MessageTemplate, error) {
	if cached, ok := s.fromCache(); ok {
		return cached, nil
	}

	templates, err := s.fetch(ctx)
	if err != nil {
		return s.fallback.Templates(ctx)
	}

	s.store(templates)
	return templates, nil
}

func (s *RemoteTemplateSource) fromCache() ([]MessageTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cached == nil || time.Now().After(s.expires) {
		return nil, false
	}
	templates := make([]MessageTemplate, len(s.cached))
	copy(templates, s.cached)
	return templates, true
}

func (s *RemoteTemplateSource) store(templates []MessageTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = templates
	s.expires = time.Now().Add(s.cacheTTL)
}

func (s *RemoteTemplateSource) fetch(ctx context.Context) ([]MessageTemplate, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CRMServer/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var fetched []MessageTemplate
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxTemplateBody)).Decode(&fetched); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Remote bodies are sometimes pasted from web pages; flatten any
	// markup and drop entries that end up unusable.
	templates := make([]MessageTemplate, 0, len(fetched))
	for _, tmpl := range fetched {
		tmpl.Name = strings.TrimSpace(tmpl.Name)
		tmpl.Body = FlattenHTML(tmpl.Body)
		if tmpl.ID == "" || tmpl.Name == "" || tmpl.Body == "" {
			continue
		}
		templates = append(templates, tmpl)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("remote source returned no usable templates")
	}
	return templates, nil
}
