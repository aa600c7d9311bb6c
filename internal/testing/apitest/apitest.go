package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/catalog"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/service"
)

// Server wraps a fully wired API instance listening on a local port.
type Server struct {
	*httptest.Server
	Registry *registry.Registry
	Service  *service.ActivityService
	t        *testing.T
}

// New starts an API server seeded with the embedded catalog. The server
// and its rate limiter are shut down automatically when the test ends.
func New(t *testing.T) *Server {
	t.Helper()

	seed, err := catalog.Load()
	if err != nil {
		t.Fatalf("apitest: failed to load catalog: %v", err)
	}

	reg := registry.New()
	reg.Seed(seed)

	svc := service.NewActivityService(reg)
	activityHandler := handler.NewActivityHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /{$}", handler.Root)
	// promhttp's own gzip is disabled; the Compress middleware already
	// encodes the response.
	mux.Handle("GET /metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		DisableCompression: true,
	}))
	activityHandler.RegisterRoutes(mux)

	// Generous limits so tests never trip the limiter.
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   10000,
		Window: time.Minute,
		Burst:  1000,
	})
	t.Cleanup(rateLimiter.Stop)

	// Logger is omitted to keep test output quiet.
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Recovery,
		middleware.CORS([]string{"*"}),
		middleware.RateLimit(rateLimiter),
		middleware.Metrics,
		middleware.Compress,
	)

	srv := httptest.NewServer(wrapped)
	t.Cleanup(srv.Close)

	return &Server{
		Server:   srv,
		Registry: reg,
		Service:  svc,
		t:        t,
	}
}

// GetJSON issues a GET, decodes the JSON response into v when v is
// non-nil, and returns the status code.
func (s *Server) GetJSON(path string, v interface{}) int {
	s.t.Helper()
	return s.doJSON(http.MethodGet, path, v)
}

// PostJSON issues a POST with no body, decodes the JSON response into v
// when v is non-nil, and returns the status code.
func (s *Server) PostJSON(path string, v interface{}) int {
	s.t.Helper()
	return s.doJSON(http.MethodPost, path, v)
}

func (s *Server) doJSON(method, path string, v interface{}) int {
	s.t.Helper()

	resp := s.Do(method, path)
	defer func() { _ = resp.Body.Close() }()

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			s.t.Fatalf("apitest: decoding %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

// Do issues a request and fails the test on transport errors. The caller
// is responsible for closing the response body.
func (s *Server) Do(method, path string) *http.Response {
	s.t.Helper()

	req, err := http.NewRequest(method, s.URL+path, nil)
	if err != nil {
		s.t.Fatalf("apitest: building %s %s: %v", method, path, err)
	}

	resp, err := s.Client().Do(req)
	if err != nil {
		s.t.Fatalf("apitest: %s %s failed: %v", method, path, err)
	}
	return resp
}

// NoRedirectClient returns a client that reports redirects instead of
// following them.
func (s *Server) NoRedirectClient() *http.Client {
	client := *s.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &client
}

// ActivityPath returns the URL path for a single activity, escaping the
// name so spaces survive routing.
func ActivityPath(activity string) string {
	return "/activities/" + url.PathEscape(activity)
}

// SignupPath returns the signup URL for an activity and email pair.
func SignupPath(activity, email string) string {
	return ActivityPath(activity) + "/signup?email=" + url.QueryEscape(email)
}

// UnregisterPath returns the unregister URL for an activity and email pair.
func UnregisterPath(activity, email string) string {
	return ActivityPath(activity) + "/unregister?email=" + url.QueryEscape(email)
}
