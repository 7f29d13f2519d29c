package campaigns

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// ErrInvalidURL marks preview requests rejected before any fetch, so
// callers can tell bad input apart from upstream failures.
var ErrInvalidURL = errors.New("invalid preview url")

// ErrRateLimited marks preview requests that could not obtain a fetch
// slot within the request deadline.
var ErrRateLimited = errors.New("preview rate limited")

// LinkPreview is the metadata extracted from a linked page, shown when
// a campaign message contains a URL.
type LinkPreview struct {
	URL         string `json:"url"`
	Host        string `json:"host"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

const (
	// maxPreviewBody caps how much of the page is read; metadata lives
	// in the head, so half a megabyte is plenty.
	maxPreviewBody = 512 << 10

	maxTitleLength       = 200
	maxDescriptionLength = 300
)

// PreviewConfig configures a PreviewClient.
type PreviewConfig struct {
	Timeout   time.Duration
	RateLimit rate.Limit
	Cache     *PreviewCache
}

// PreviewClient fetches a page and extracts title, description and
// image metadata for link previews.
type PreviewClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *PreviewCache
}

// NewPreviewClient creates a preview client with sensible defaults.
func NewPreviewClient(config PreviewConfig) *PreviewClient {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = rate.Every(time.Second)
	}

	return &PreviewClient{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(config.RateLimit, 1),
		cache:   config.Cache,
	}
}

// Preview fetches rawURL and extracts preview metadata. Only http and
// https URLs are accepted.
func (c *PreviewClient) Preview(ctx context.Context, rawURL string) (*LinkPreview, error) {
	parsed, err := validatePreviewURL(rawURL)
	if err != nil {
		return nil, err
	}

	cacheKey := previewCacheKey(parsed.String())
	if c.cache != nil {
		if cached, found := c.cache.Get(cacheKey); found {
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CRMServer/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	preview, err := parsePreview(io.LimitReader(resp.Body, maxPreviewBody), parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, preview)
	}
	return preview, nil
}

// validatePreviewURL rejects anything that is not an absolute http(s)
// URL with a host.
func validatePreviewURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidURL)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https URLs are supported", ErrInvalidURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: url has no host", ErrInvalidURL)
	}
	return parsed, nil
}

// parsePreview extracts preview metadata from a page body.
func parsePreview(body io.Reader, pageURL *url.URL) (*LinkPreview, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	preview := &LinkPreview{
		URL:  pageURL.String(),
		Host: pageURL.Host,
	}

	// Open Graph tags win over the plain document tags.
	if content, exists := doc.Find(`meta[property="og:title"]`).Attr("content"); exists {
		preview.Title = strings.TrimSpace(content)
	}
	if preview.Title == "" {
		preview.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if preview.Title == "" {
		preview.Title = pageURL.Host
	}
	preview.Title = truncate(preview.Title, maxTitleLength)

	if content, exists := doc.Find(`meta[property="og:description"]`).Attr("content"); exists {
		preview.Description = strings.TrimSpace(content)
	}
	if preview.Description == "" {
		if content, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
			preview.Description = strings.TrimSpace(content)
		}
	}
	preview.Description = truncate(preview.Description, maxDescriptionLength)

	if content, exists := doc.Find(`meta[property="og:image"]`).Attr("content"); exists {
		if imageURL := resolveImageURL(pageURL, content); imageURL != "" {
			preview.ImageURL = imageURL
		}
	}

	return preview, nil
}

// resolveImageURL makes a possibly relative image reference absolute.
func resolveImageURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func previewCacheKey(pageURL string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(pageURL)))
	return hex.EncodeToString(hash[:])
}
