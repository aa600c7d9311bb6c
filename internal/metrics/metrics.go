// Package metrics defines the Prometheus collectors for the activities API.
//
// Collectors are registered with the default registry via promauto and
// exposed on GET /metrics. HTTP series are labeled by the matched route
// pattern rather than the raw path, so activity names never explode the
// label space.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "activities_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_signups_total",
			Help: "Total number of successful activity signups",
		},
		[]string{"activity"},
	)

	UnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_unregisters_total",
			Help: "Total number of successful activity unregistrations",
		},
		[]string{"activity"},
	)

	Participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activities_participants",
			Help: "Current number of registered participants per activity",
		},
		[]string{"activity"},
	)

	Capacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activities_capacity",
			Help: "Advertised maximum participants per activity",
		},
		[]string{"activity"},
	)
)
