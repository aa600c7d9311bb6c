// Package tests contains end-to-end acceptance tests for the activities API.
//
// These tests boot the full HTTP stack in-process: routing, middleware,
// handlers, and the seeded in-memory registry underneath. No external
// services are required.
//
// To run tests:
//
//	go test ./tests/...
//
// Each test starts its own server via apitest.New, so roster mutations in
// one test never leak into another.
package tests

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/testing/apitest"
	"github.com/mergington/activities/internal/testing/fixtures"
)

/*
FEATURE: Test Infrastructure Smoke Test
DOMAIN: Infrastructure

ACCEPTANCE CRITERIA:
===================

AC-SMOKE-001: Health Endpoint
  GIVEN a running server
  WHEN we request GET /health
  THEN the server reports a healthy status

AC-SMOKE-002: Seeded Registry
  GIVEN a fresh server
  WHEN we list activities
  THEN the full school catalog is present

AC-SMOKE-003: Root Redirect
  GIVEN a running server
  WHEN we request GET /
  THEN we are redirected to /activities

AC-SMOKE-004: Metrics Endpoint
  GIVEN a server that has handled a request
  WHEN we scrape GET /metrics
  THEN request counters are exposed in Prometheus text format

AC-SMOKE-005: Standard Response Headers
  GIVEN a running server
  WHEN we make any request
  THEN a request ID and rate limit headers are present

AC-SMOKE-006: Server Isolation
  GIVEN two servers created by separate tests
  WHEN one server's rosters are mutated
  THEN the other server's rosters are unaffected
*/

func TestSmoke_HealthEndpoint(t *testing.T) {
	// AC-SMOKE-001: Health Endpoint
	srv := apitest.New(t)

	var health struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	status := srv.GetJSON("/health", &health)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Time)
}

func TestSmoke_SeededRegistry(t *testing.T) {
	// AC-SMOKE-002: Seeded Registry
	srv := apitest.New(t)

	require.Equal(t, fixtures.SeedActivityCount, srv.Registry.Len())

	var activities map[string]model.Activity
	status := srv.GetJSON("/activities", &activities)
	require.Equal(t, http.StatusOK, status)

	for _, name := range fixtures.SeedActivityNames() {
		assert.Contains(t, activities, name)
	}
}

func TestSmoke_RootRedirect(t *testing.T) {
	// AC-SMOKE-003: Root Redirect
	srv := apitest.New(t)

	resp, err := srv.NoRedirectClient().Get(srv.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/activities", resp.Header.Get("Location"))
}

func TestSmoke_MetricsEndpoint(t *testing.T) {
	// AC-SMOKE-004: Metrics Endpoint
	srv := apitest.New(t)

	// Generate one request so the counters exist
	status := srv.GetJSON("/activities", nil)
	require.Equal(t, http.StatusOK, status)

	resp := srv.Do(http.MethodGet, "/metrics")
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "activities_http_requests_total"),
		"expected request counter in metrics output")
}

func TestSmoke_StandardResponseHeaders(t *testing.T) {
	// AC-SMOKE-005: Standard Response Headers
	srv := apitest.New(t)

	resp := srv.Do(http.MethodGet, "/health")
	defer func() { _ = resp.Body.Close() }()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))
}

func TestSmoke_ServerIsolation(t *testing.T) {
	// AC-SMOKE-006: Server Isolation
	first := apitest.New(t)
	second := apitest.New(t)

	status := first.PostJSON(apitest.SignupPath("Gym Class", "isolated@mergington.edu"), nil)
	require.Equal(t, http.StatusOK, status)

	var activities map[string]model.Activity
	status = second.GetJSON("/activities", &activities)
	require.Equal(t, http.StatusOK, status)

	assert.NotContains(t, activities["Gym Class"].Participants, "isolated@mergington.edu")
	assert.Len(t, activities["Gym Class"].Participants, 2)
}
