// @title Contact CRM API
// @version 1.0
// @description REST API for a contact CRM: bulk import with validation and normalization of Indian mobile numbers, contact management, import history and campaign template tooling.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crmserver/database"
	"crmserver/internal/config"
	"crmserver/server"
)

func main() {
	log.Println("Starting Contact CRM server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	db, err := database.NewContactsDBWithConfig(cfg.DatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Failed to open contacts database: %v", err)
	}
	defer db.Close()
	log.Printf("Using contacts database: %s", cfg.DatabasePath)

	srv, err := server.NewServer(db, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
