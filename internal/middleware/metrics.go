package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mergington/activities/internal/metrics"
)

// Metrics records a Prometheus counter and latency histogram per request.
// Series are labeled with the matched route pattern (r.Pattern), not the raw
// path, to keep label cardinality bounded. It must sit inside any middleware
// that replaces the request pointer (RequestID does), because the mux writes
// the matched pattern into the request it receives.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
