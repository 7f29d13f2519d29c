package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the CRM server. Every field can
// be overridden through a CRM_* environment variable; defaults are
// suitable for a local run.
type Config struct {
	// Server
	Port string `json:"port"`

	// Storage
	DatabasePath    string        `json:"database_path"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
	SeedDemoData    bool          `json:"seed_demo_data"`

	// Imports
	MaxUploadBytes int64 `json:"max_upload_bytes"`

	// Logging
	LogLevel string `json:"log_level"`

	// Campaign templates
	TemplateSourceURL string        `json:"template_source_url"`
	TemplateCacheTTL  time.Duration `json:"template_cache_ttl"`

	// Link previews
	PreviewTimeout         time.Duration `json:"preview_timeout"`
	PreviewCacheTTL        time.Duration `json:"preview_cache_ttl"`
	PreviewRateLimitPerSec int           `json:"preview_rate_limit_per_sec"`
}

// LoadConfig builds the configuration from environment variables.
func LoadConfig() (*Config, error) {
	config := &Config{
		// Server
		Port: getEnv("CRM_PORT", "8080"),

		// Storage
		DatabasePath:    getEnv("CRM_DATABASE_PATH", "contacts.db"),
		MaxOpenConns:    getEnvInt("CRM_DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("CRM_DB_MAX_IDLE_CONNS", 3),
		ConnMaxLifetime: getEnvDuration("CRM_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		SeedDemoData:    getEnvBool("CRM_SEED_DEMO_DATA", true),

		// Imports
		MaxUploadBytes: getEnvInt64("CRM_MAX_UPLOAD_BYTES", 10<<20),

		// Logging
		LogLevel: getEnv("CRM_LOG_LEVEL", "INFO"),

		// Campaign templates
		TemplateSourceURL: os.Getenv("CRM_TEMPLATE_SOURCE_URL"),
		TemplateCacheTTL:  getEnvDuration("CRM_TEMPLATE_CACHE_TTL", 5*time.Minute),

		// Link previews
		PreviewTimeout:         getEnvDuration("CRM_PREVIEW_TIMEOUT", 5*time.Second),
		PreviewCacheTTL:        getEnvDuration("CRM_PREVIEW_CACHE_TTL", time.Hour),
		PreviewRateLimitPerSec: getEnvInt("CRM_PREVIEW_RATE_LIMIT_PER_SEC", 1),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv returns the environment variable or the default when unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 returns the environment variable as int64 or the default.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration returns the environment variable as Duration or the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool returns the environment variable as bool or the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
