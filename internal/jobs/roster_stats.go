package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/service"
)

// RosterStats periodically publishes per-activity roster gauges
// - activities_participants tracks current roster size per activity
// - activities_capacity tracks the advertised maximum per activity
type RosterStats struct {
	activityService *service.ActivityService
	interval        time.Duration
	stopCh          chan struct{}
	wg              sync.WaitGroup
	running         bool
	mu              sync.Mutex
}

// NewRosterStats creates a new roster stats job
func NewRosterStats(activityService *service.ActivityService, interval time.Duration) *RosterStats {
	if interval == 0 {
		interval = 1 * time.Minute // Default refresh every minute
	}
	return &RosterStats{
		activityService: activityService,
		interval:        interval,
		stopCh:          make(chan struct{}),
	}
}

// Start begins the roster stats job
func (s *RosterStats) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	log.Printf("Roster stats started (interval: %v)", s.interval)
}

// Stop gracefully stops the roster stats job
func (s *RosterStats) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	log.Println("Roster stats stopped")
}

// run is the main loop
func (s *RosterStats) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.collect()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.collect()
		case <-s.stopCh:
			return
		}
	}
}

// collect refreshes the roster gauges from the current registry state
func (s *RosterStats) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.publish(ctx); err != nil {
		log.Printf("Error collecting roster stats: %v", err)
	}
}

// publish sets one gauge pair per activity
func (s *RosterStats) publish(ctx context.Context) error {
	activities, err := s.activityService.ListActivities(ctx)
	if err != nil {
		return err
	}

	for name, activity := range activities {
		metrics.Participants.WithLabelValues(name).Set(float64(len(activity.Participants)))
		metrics.Capacity.WithLabelValues(name).Set(float64(activity.MaxParticipants))
	}
	return nil
}

// RunOnce runs the stats collection once (for testing or manual trigger)
func (s *RosterStats) RunOnce(ctx context.Context) error {
	return s.publish(ctx)
}

// IsRunning returns whether the stats job is running
func (s *RosterStats) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
