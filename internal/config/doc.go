// Package config manages application configuration for the activities API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables, with an optional
// .env file applied first:
//
//	cfg, err := config.Load()
//
// Values are bound through struct tags via github.com/caarlos0/env:
//
//	Port string `env:"SERVER_PORT" envDefault:"8080"`
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - CatalogConfig: activity catalog source settings
//   - StatsConfig: roster statistics job settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - HTTP write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated origin allow list
//	CATALOG_PATH          - catalog JSON file overriding the embedded seed
//	STATS_INTERVAL        - roster stats refresh interval (default: 1m)
package config
