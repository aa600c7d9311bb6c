// Package registry provides the in-memory activity store for the
// Mergington High School Activities API.
//
// The registry is the only storage layer: all state lives in process memory,
// keyed by activity display name. Restarting the server resets every roster
// to the seed catalog.
//
// # Concurrency
//
// net/http serves handlers on separate goroutines, so the map is guarded by
// a sync.RWMutex. Reads return deep copies; callers can never mutate
// registry state through a snapshot.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Activity does not exist
//   - ErrDuplicate: Participant is already on the roster
//   - ErrNotRegistered: Participant is not on the roster
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, registry.ErrNotFound) {
//	    // Handle unknown activity
//	}
package registry

import (
	"context"
	"errors"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// Standard errors for registry operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested activity does not exist.
	ErrNotFound = errors.New("activity not found")

	// ErrDuplicate indicates the participant is already on the roster.
	ErrDuplicate = errors.New("participant already registered")

	// ErrNotRegistered indicates the participant is not on the roster.
	ErrNotRegistered = errors.New("participant not registered")
)

// Registry is a thread-safe in-memory store of activities keyed by display
// name (e.g. "Chess Club").
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New returns an empty registry. Call Seed to load an activity catalog.
func New() *Registry {
	return &Registry{
		activities: make(map[string]*model.Activity),
	}
}

// Seed replaces the registry contents with the given catalog. Entries are
// cloned so later catalog mutations cannot leak into the store.
func (r *Registry) Seed(catalog map[string]model.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = make(map[string]*model.Activity, len(catalog))
	for name, activity := range catalog {
		clone := activity.Clone()
		r.activities[name] = &clone
	}
}

// List returns a deep-copied snapshot of every activity.
func (r *Registry) List(ctx context.Context) (map[string]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]model.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

// Get returns a copy of the named activity, or ErrNotFound.
func (r *Registry) Get(ctx context.Context, name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return activity.Clone(), nil
}

// AddParticipant appends email to the named activity's roster.
// Returns ErrNotFound if the activity does not exist and ErrDuplicate if the
// email is already registered. Signup order is preserved.
func (r *Registry) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	if activity.HasParticipant(email) {
		return ErrDuplicate
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant removes email from the named activity's roster.
// Returns ErrNotFound if the activity does not exist and ErrNotRegistered if
// the email is not on the roster. The relative order of the remaining
// participants is preserved.
func (r *Registry) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}

// Len returns the number of activities in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}
