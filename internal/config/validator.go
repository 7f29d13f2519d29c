package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Validate checks the configuration for values the server cannot run
// with. All problems are reported at once.
func (c *Config) Validate() error {
	var errors []string

	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	if c.MaxUploadBytes < 1024 {
		errors = append(errors, "max upload size must be at least 1 KB")
	}

	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if c.TemplateSourceURL != "" {
		parsed, err := url.Parse(c.TemplateSourceURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			errors = append(errors, fmt.Sprintf("template source URL must be an absolute http(s) URL: %s", c.TemplateSourceURL))
		}
	}
	if c.TemplateCacheTTL < time.Second {
		errors = append(errors, "template cache TTL must be at least 1 second")
	}

	if c.PreviewTimeout < time.Second {
		errors = append(errors, "preview timeout must be at least 1 second")
	}
	if c.PreviewRateLimitPerSec < 1 {
		errors = append(errors, "preview rate limit must be at least 1 per second")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}
	return nil
}
