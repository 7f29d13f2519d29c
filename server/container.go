package server

import (
	"fmt"
	"log"
	"time"

	"crmserver/campaigns"
	"crmserver/database"
	serverconfig "crmserver/internal/config"
	"crmserver/server/handlers"
	"crmserver/server/services"

	"golang.org/x/time/rate"
)

// Container is the dependency container for the server. It owns the
// construction order: campaign components first, then services, then
// handlers, so each stage only sees fully built dependencies.
type Container struct {
	// Configuration
	Config *serverconfig.Config

	// Storage
	DB *database.ContactsDB

	// Campaign components
	TemplateSource campaigns.TemplateSource
	PreviewCache   *campaigns.PreviewCache
	PreviewClient  *campaigns.PreviewClient

	// Services
	ImportService    *services.ImportService
	ContactService   *services.ContactService
	DashboardService *services.DashboardService
	TemplateService  *services.TemplateService

	// Handlers
	ImportHandler    *handlers.ImportHandler
	ContactHandler   *handlers.ContactHandler
	DashboardHandler *handlers.DashboardHandler
	CampaignHandler  *handlers.CampaignHandler
	SystemHandler    *handlers.SystemHandler
}

// NewContainer builds all components in dependency order. The database
// is opened by the caller; the container never closes it.
func NewContainer(db *database.ContactsDB, cfg *serverconfig.Config) (*Container, error) {
	if db == nil {
		return nil, fmt.Errorf("database is nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	container := &Container{
		Config: cfg,
		DB:     db,
	}

	if err := container.InitCampaigns(); err != nil {
		return nil, fmt.Errorf("failed to init campaign components: %w", err)
	}

	if err := container.InitServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	if err := container.InitHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	if cfg.SeedDemoData {
		if err := db.EnsureDemoContacts(); err != nil {
			// Seeding is a convenience for fresh installs, not a
			// startup requirement.
			log.Printf("Warning: failed to seed demo contacts: %v", err)
		}
	}

	return container, nil
}

// InitCampaigns initializes the template source and the link preview
// client with its cache.
func (c *Container) InitCampaigns() error {
	if c.Config.TemplateSourceURL != "" {
		c.TemplateSource = campaigns.NewRemoteTemplateSource(campaigns.RemoteTemplateConfig{
			URL:      c.Config.TemplateSourceURL,
			CacheTTL: c.Config.TemplateCacheTTL,
		})
		log.Printf("Campaign templates served from %s", c.Config.TemplateSourceURL)
	} else {
		c.TemplateSource = campaigns.NewStaticTemplateSource()
	}

	c.PreviewCache = campaigns.NewPreviewCache(campaigns.PreviewCacheConfig{
		Enabled:         true,
		TTL:             c.Config.PreviewCacheTTL,
		CleanupInterval: 10 * time.Minute,
		MaxSize:         1000,
	})

	rateLimit := rate.Limit(c.Config.PreviewRateLimitPerSec)
	if c.Config.PreviewRateLimitPerSec <= 0 {
		rateLimit = rate.Every(time.Second)
	}
	c.PreviewClient = campaigns.NewPreviewClient(campaigns.PreviewConfig{
		Timeout:   c.Config.PreviewTimeout,
		RateLimit: rateLimit,
		Cache:     c.PreviewCache,
	})

	return nil
}

// InitServices initializes the service layer over the contacts store.
func (c *Container) InitServices() error {
	c.ImportService = services.NewImportService(c.DB)
	c.ContactService = services.NewContactService(c.DB)
	c.DashboardService = services.NewDashboardService(c.DB)
	c.TemplateService = services.NewTemplateService(c.TemplateSource, c.PreviewClient)
	return nil
}

// InitHandlers initializes the HTTP handlers over the services.
func (c *Container) InitHandlers() error {
	c.ImportHandler = handlers.NewImportHandler(c.ImportService, c.Config.MaxUploadBytes)
	c.ContactHandler = handlers.NewContactHandler(c.ContactService)
	c.DashboardHandler = handlers.NewDashboardHandler(c.DashboardService)
	c.CampaignHandler = handlers.NewCampaignHandler(c.TemplateService)
	c.SystemHandler = handlers.NewSystemHandler(c.DB)
	return nil
}
