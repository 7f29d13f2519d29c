package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"crmserver/server/handlers"
	"crmserver/server/middleware"
)

// Start builds the HTTP handler and blocks serving requests until the
// listener fails or Shutdown is called.
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	// WriteTimeout leaves room for issue exports: an .xlsx report is
	// rendered in memory and can take a while to stream on slow links.
	s.httpServer = &http.Server{
		Addr:         s.config.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting HTTP server on %s...", s.httpServer.Addr)
	log.Printf("API available at: http://localhost%s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// ensureHTTPHandler builds the gin handler exactly once, so Start and
// ServeHTTP can be called in any order.
func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}
	if s.httpHandler == nil {
		return nil, fmt.Errorf("httpHandler is nil")
	}

	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// Release mode unless the environment asks for something else.
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)

	s.registerGinHandlers(router)

	return router, nil
}

// ServeHTTP implements http.Handler for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("Initiating graceful shutdown...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}

// registerGinHandlers registers all API routes.
func (s *Server) registerGinHandlers(router *gin.Engine) {
	// Health check endpoint, outside /api so load balancers can reach
	// it without a prefix.
	if s.systemHandler != nil {
		router.GET("/health", s.systemHandler.HandleHealth)
	}

	api := router.Group("/api")

	// Contacts API: CRUD plus the import pipeline endpoints. Static
	// segments (import, validate, template) are resolved before :id.
	if s.contactHandler != nil {
		contactsAPI := api.Group("/contacts")
		{
			contactsAPI.GET("", s.contactHandler.HandleListContacts)
			contactsAPI.POST("", s.contactHandler.HandleCreateContact)
			contactsAPI.GET("/:id", s.contactHandler.HandleGetContact)
			contactsAPI.DELETE("/:id", s.contactHandler.HandleDeleteContact)
		}
	}

	if s.importHandler != nil {
		importAPI := api.Group("/contacts")
		{
			importAPI.POST("/import", s.importHandler.HandleImportContacts)
			importAPI.POST("/validate", s.importHandler.HandleValidateContacts)
			importAPI.POST("/validate/export", s.importHandler.HandleExportIssues)
			importAPI.GET("/template", s.importHandler.HandleDownloadTemplate)
		}
	}

	// Dashboard API
	if s.dashboardHandler != nil {
		dashboardAPI := api.Group("/dashboard")
		{
			dashboardAPI.GET("/summary", s.dashboardHandler.HandleDashboardSummary)
		}

		api.GET("/imports", s.dashboardHandler.HandleImportHistory)
	}

	// Campaigns API
	if s.campaignHandler != nil {
		campaignsAPI := api.Group("/campaigns")
		{
			campaignsAPI.GET("/templates", s.campaignHandler.HandleListTemplates)
			campaignsAPI.POST("/link-preview", s.campaignHandler.HandleLinkPreview)
		}
	}
}
