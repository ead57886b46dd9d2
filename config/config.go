// ABOUTME: Configuration loader for the roadmap backend service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port     string
	CacheTTL int // seconds, default for general cache

	// Rate Limiting
	RateLimitEnabled   bool // Enable rate limiting (default: true)
	RateLimitCalculate int  // Requests per minute for calculation endpoints (default: 60)
	RateLimitDefault   int  // Requests per minute for all other endpoints (default: 100)

	// CORS
	CORSAllowedOrigins []string // Allowed origins; empty means any origin

	// Catalogue
	CatalogueFile string // optional YAML file with per-operation site defaults
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		CacheTTL: getEnvInt("CACHE_TTL", 300),

		RateLimitEnabled:   getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitCalculate: getEnvInt("RATE_LIMIT_CALCULATE", 60),
		RateLimitDefault:   getEnvInt("RATE_LIMIT_DEFAULT", 100),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		CatalogueFile: os.Getenv("CATALOGUE_FILE"),
	}

	if cfg.CacheTTL < 1 {
		return nil, fmt.Errorf("CACHE_TTL must be >= 1 second, got %d", cfg.CacheTTL)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_CALCULATE", cfg.RateLimitCalculate},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	if cfg.CatalogueFile != "" {
		if _, err := os.Stat(cfg.CatalogueFile); err != nil {
			return nil, fmt.Errorf("CATALOGUE_FILE %s is not readable: %w", cfg.CatalogueFile, err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping empty entries.
func getEnvList(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
