package main

import (
	"fmt"
	"os"

	"crmserver/internal/config"
)

func main() {
	fmt.Println("=== Configuration Check ===")
	fmt.Println("")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration loaded and validated")
	fmt.Println("")

	fmt.Println("Server:")
	fmt.Printf("  Port: %s\n", cfg.Port)
	fmt.Printf("  Listen address: %s\n", cfg.Addr())
	fmt.Println("")

	fmt.Println("Storage:")
	fmt.Printf("  Contacts database: %s\n", cfg.DatabasePath)
	fmt.Printf("  Max Open Connections: %d\n", cfg.MaxOpenConns)
	fmt.Printf("  Max Idle Connections: %d\n", cfg.MaxIdleConns)
	fmt.Printf("  Connection Max Lifetime: %v\n", cfg.ConnMaxLifetime)
	fmt.Printf("  Seed demo contacts: %v\n", cfg.SeedDemoData)
	fmt.Println("")

	fmt.Println("Imports:")
	fmt.Printf("  Max upload size: %.1f MB\n", float64(cfg.MaxUploadBytes)/(1<<20))
	fmt.Println("")

	fmt.Println("Logging:")
	fmt.Printf("  Level: %s\n", cfg.LogLevel)
	fmt.Println("")

	fmt.Println("Campaign Templates:")
	if cfg.TemplateSourceURL != "" {
		fmt.Printf("  Source: remote (%s)\n", cfg.TemplateSourceURL)
	} else {
		fmt.Printf("  Source: built-in\n")
	}
	fmt.Printf("  Cache TTL: %v\n", cfg.TemplateCacheTTL)
	fmt.Println("")

	fmt.Println("Link Previews:")
	fmt.Printf("  Fetch timeout: %v\n", cfg.PreviewTimeout)
	fmt.Printf("  Cache TTL: %v\n", cfg.PreviewCacheTTL)
	fmt.Printf("  Rate limit: %d req/s\n", cfg.PreviewRateLimitPerSec)
	fmt.Println("")

	fmt.Println("=== Check Complete ===")
}
