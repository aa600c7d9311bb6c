// Package jobs implements background job processing for the activities API.
//
// The jobs package contains scheduled tasks that run independently of
// HTTP request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - RosterStats: Periodic refresh of per-activity Prometheus gauges
//
// # Lifecycle
//
// Jobs expose Start and Stop for use from main:
//
//	stats := jobs.NewRosterStats(activityService, cfg.Stats.Interval)
//	stats.Start()
//	defer stats.Stop()
//
// Start launches a single goroutine that runs the job immediately and
// then on every interval tick. Stop signals the goroutine and waits
// for it to exit.
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed run is
// retried on the next tick.
package jobs
