// ABOUTME: Entry point for the Automation Roadmap Analyzer backend service
// ABOUTME: Provides the HTTP API for roadmap calculation and CSV export

package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/furnaceworks/automation-roadmap/cache"
	"github.com/furnaceworks/automation-roadmap/config"
	"github.com/furnaceworks/automation-roadmap/handlers"
	"github.com/furnaceworks/automation-roadmap/logger"
	"github.com/furnaceworks/automation-roadmap/middleware"
	"github.com/furnaceworks/automation-roadmap/services"
)

func main() {
	// Load .env if present; real environment wins
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Automation Roadmap Analyzer Backend")

	// Resolve the operation catalogue, with optional site defaults
	defs, err := services.LoadCatalogue(cfg.CatalogueFile)
	if err != nil {
		slog.Error("Failed to load operation catalogue", "error", err)
		os.Exit(1)
	}
	if cfg.CatalogueFile != "" {
		slog.Info("Site catalogue defaults applied", "file", cfg.CatalogueFile)
	}
	slog.Info("Catalogue resolved", "operations", len(defs))

	// Initialize cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c, defs)

	// Rate limiters: calculation endpoints get a tighter budget
	var calcLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		calcLimiter = middleware.NewRateLimiter(cfg.RateLimitCalculate, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		slog.Info("Rate limiting enabled",
			"calculate_per_min", cfg.RateLimitCalculate,
			"default_per_min", cfg.RateLimitDefault,
		)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	// Any origin unless CORS_ALLOWED_ORIGINS restricts the API
	cors := middleware.CORS
	if len(cfg.CORSAllowedOrigins) > 0 {
		cors = middleware.CORSWithConfig(cfg.CORSAllowedOrigins)
		slog.Info("CORS restricted", "origins", cfg.CORSAllowedOrigins)
	}

	// Register routes with the middleware chain
	mux := http.NewServeMux()
	preflight := map[string]bool{}
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if strings.HasPrefix(route.Path, "/api/v1/roadmap/") {
			limiter = calcLimiter
		}

		handler := middleware.Chain(route.Handler,
			middleware.LogRequest,
			cors,
			middleware.RateLimit(limiter, middleware.ClientIP),
		)

		mux.HandleFunc(route.Method+" "+route.Path, handler)

		// Method patterns don't match OPTIONS, so register preflight
		// handling per path (once; two routes may share a path)
		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc("OPTIONS "+route.Path, cors(func(w http.ResponseWriter, r *http.Request) {}))
		}
	}

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
