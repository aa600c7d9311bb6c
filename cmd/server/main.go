package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/jobs"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the activity catalog
	seed, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the in-memory registry
	reg := registry.New()
	reg.Seed(seed)

	slog.Info("registry seeded",
		slog.Int("activities", reg.Len()),
		slog.Bool("embedded", cfg.Catalog.Path == ""),
	)

	// Initialize services
	activityService := service.NewActivityService(reg)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize roster stats job
	rosterStats := jobs.NewRosterStats(activityService, cfg.Stats.Interval)
	rosterStats.Start()
	defer rosterStats.Stop()

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Prometheus metrics endpoint. promhttp's own gzip is disabled; the
	// Compress middleware already encodes the response.
	mux.Handle("GET /metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		DisableCompression: true,
	}))

	// Index redirects to the activity collection
	mux.HandleFunc("GET /{$}", handler.Root)

	// Activity endpoints
	activityHandler.RegisterRoutes(mux)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Metrics,
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// loadCatalog returns the embedded catalog unless path points at an
// override file on disk.
func loadCatalog(path string) (map[string]model.Activity, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load()
}
