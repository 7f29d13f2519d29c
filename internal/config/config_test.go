package config

import (
	"testing"
	"time"
)

func validTestConfig() *Config {
	return &Config{
		Port:                   "8080",
		DatabasePath:           "contacts.db",
		MaxOpenConns:           10,
		MaxIdleConns:           3,
		ConnMaxLifetime:        5 * time.Minute,
		MaxUploadBytes:         10 << 20,
		LogLevel:               "INFO",
		TemplateCacheTTL:       5 * time.Minute,
		PreviewTimeout:         5 * time.Second,
		PreviewCacheTTL:        time.Hour,
		PreviewRateLimitPerSec: 1,
	}
}

func TestConfigLogLevelValidation(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantError bool
	}{
		{"Valid DEBUG", "DEBUG", false},
		{"Valid INFO", "INFO", false},
		{"Valid WARN", "WARN", false},
		{"Valid ERROR", "ERROR", false},
		{"Valid lowercase debug", "debug", false},
		{"Valid lowercase info", "info", false},
		{"Invalid value", "INVALID", true},
		{"Empty string", "", false},
		{"Mixed case", "DeBuG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.LogLevel = tt.logLevel

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfigPortValidation(t *testing.T) {
	tests := []struct {
		name      string
		port      string
		wantError bool
	}{
		{"Valid port", "8080", false},
		{"Low port", "1", false},
		{"High port", "65535", false},
		{"Zero port", "0", true},
		{"Out of range", "70000", true},
		{"Not a number", "http", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Port = tt.port

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfigPoolValidation(t *testing.T) {
	cfg := validTestConfig()
	cfg.MaxIdleConns = cfg.MaxOpenConns + 1

	if err := cfg.Validate(); err == nil {
		t.Error("expected error when idle connections exceed open connections")
	}
}

func TestConfigTemplateSourceURLValidation(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantError bool
	}{
		{"Empty means static source", "", false},
		{"Valid https", "https://templates.example.in/v1/list.json", false},
		{"Valid http", "http://localhost:9000/templates", false},
		{"Missing scheme", "templates.example.in/list", true},
		{"Unsupported scheme", "ftp://example.in/list", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.TemplateSourceURL = tt.url

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Port == "" {
		t.Error("Port should have a default value")
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath should have a default value")
	}
	if cfg.MaxUploadBytes <= 0 {
		t.Error("MaxUploadBytes should have a positive default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestConfigAddr(t *testing.T) {
	cfg := validTestConfig()
	if addr := cfg.Addr(); addr != ":8080" {
		t.Errorf("Addr() = %q, expected \":8080\"", addr)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CRM_TEST_STRING", "value")
	t.Setenv("CRM_TEST_INT", "42")
	t.Setenv("CRM_TEST_INT64", "1048576")
	t.Setenv("CRM_TEST_DURATION", "90s")
	t.Setenv("CRM_TEST_BOOL", "false")
	t.Setenv("CRM_TEST_BAD_INT", "not-a-number")

	if got := getEnv("CRM_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("getEnv() = %q", got)
	}
	if got := getEnv("CRM_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv() fallback = %q", got)
	}
	if got := getEnvInt("CRM_TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt() = %d", got)
	}
	if got := getEnvInt("CRM_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt() with invalid value = %d, expected fallback", got)
	}
	if got := getEnvInt64("CRM_TEST_INT64", 1); got != 1048576 {
		t.Errorf("getEnvInt64() = %d", got)
	}
	if got := getEnvDuration("CRM_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("getEnvDuration() = %v", got)
	}
	if got := getEnvBool("CRM_TEST_BOOL", true); got != false {
		t.Errorf("getEnvBool() = %v", got)
	}
	if got := getEnvBool("CRM_TEST_UNSET", true); got != true {
		t.Errorf("getEnvBool() fallback = %v", got)
	}
}
