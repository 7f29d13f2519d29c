package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"crmserver/database"
	"crmserver/internal/config"
	"crmserver/server/handlers"
	"crmserver/server/services"

	_ "github.com/mattn/go-sqlite3"
)

// Aliases so callers can keep importing the server package alone.
type Config = config.Config

var LoadConfig = config.LoadConfig

// Server is the HTTP server for the contact CRM. It owns the gin
// handler, the service layer and the lifecycle of the listener; the
// contacts database is opened by the caller and only borrowed here.
type Server struct {
	db     *database.ContactsDB
	config *Config

	httpServer     *http.Server
	httpHandler    http.Handler
	handlerOnce    sync.Once
	handlerInitErr error

	startTime time.Time

	// Services
	importService    *services.ImportService
	contactService   *services.ContactService
	dashboardService *services.DashboardService
	templateService  *services.TemplateService

	// Handlers
	importHandler    *handlers.ImportHandler
	contactHandler   *handlers.ContactHandler
	dashboardHandler *handlers.DashboardHandler
	campaignHandler  *handlers.CampaignHandler
	systemHandler    *handlers.SystemHandler

	container *Container
}

// NewServer wires the dependency container and returns a server ready
// to Start. The database must already be open; the server closes
// nothing it did not create.
func NewServer(db *database.ContactsDB, cfg *Config) (*Server, error) {
	container, err := NewContainer(db, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	srv := &Server{
		db:        db,
		config:    cfg,
		startTime: time.Now(),

		importService:    container.ImportService,
		contactService:   container.ContactService,
		dashboardService: container.DashboardService,
		templateService:  container.TemplateService,

		importHandler:    container.ImportHandler,
		contactHandler:   container.ContactHandler,
		dashboardHandler: container.DashboardHandler,
		campaignHandler:  container.CampaignHandler,
		systemHandler:    container.SystemHandler,

		container: container,
	}

	if err := srv.validateCriticalDependencies(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validateCriticalDependencies verifies every component the routes rely
// on is non-nil, so a wiring mistake fails at startup instead of on the
// first request.
func (s *Server) validateCriticalDependencies() error {
	var missing []string

	if s.config == nil {
		missing = append(missing, "config")
	}
	if s.db == nil {
		missing = append(missing, "db")
	}
	if s.importHandler == nil {
		missing = append(missing, "importHandler")
	}
	if s.contactHandler == nil {
		missing = append(missing, "contactHandler")
	}
	if s.dashboardHandler == nil {
		missing = append(missing, "dashboardHandler")
	}
	if s.campaignHandler == nil {
		missing = append(missing, "campaignHandler")
	}
	if s.systemHandler == nil {
		missing = append(missing, "systemHandler")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical dependencies are nil: %v", missing)
	}

	return nil
}
