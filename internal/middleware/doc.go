// Package middleware provides HTTP middleware for the activities API.
//
// The middleware package contains reusable middleware components for
// request identification, logging, panic recovery, CORS, rate limiting,
// metrics, and response compression.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: Assigns or propagates an X-Request-ID header
//   - Logger: Structured request/response logging via slog
//   - Recovery: Converts panics into 500 JSON responses
//   - CORS: Origin allow-listing with preflight handling
//   - RateLimit: Token bucket rate limiting per client IP
//   - Metrics: Prometheus request counters and latency histograms
//   - Compress: Gzip response compression
//
// # Composition
//
// Middleware compose with Chain, where the first middleware listed is
// the outermost:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//	)
//
// # Ordering
//
// Metrics must run inside any middleware that replaces the request
// pointer (RequestID does), because the route pattern is recorded on
// the *http.Request that reaches the mux.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
