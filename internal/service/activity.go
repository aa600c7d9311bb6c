package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/registry"
)

// RosterStore defines the interface for activity storage
type RosterStore interface {
	List(ctx context.Context) (map[string]model.Activity, error)
	Get(ctx context.Context, name string) (model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService handles roster operations for extracurricular activities
type ActivityService struct {
	store RosterStore
}

// NewActivityService creates a new activity service
func NewActivityService(store RosterStore) *ActivityService {
	return &ActivityService{store: store}
}

// ListActivities returns a snapshot of every activity keyed by display name.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]model.Activity, error) {
	return s.store.List(ctx)
}

// GetActivity returns one activity by display name.
func (s *ActivityService) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	activity, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return model.Activity{}, ErrActivityNotFound
		}
		return model.Activity{}, err
	}
	return activity, nil
}

// SignUp registers a student email for the named activity.
// The advertised capacity is not enforced; rosters may grow past
// max_participants.
func (s *ActivityService) SignUp(ctx context.Context, name, email string) error {
	err := s.store.AddParticipant(ctx, name, email)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, registry.ErrDuplicate):
		return ErrAlreadySignedUp
	case err != nil:
		return err
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	slog.Info("student signed up",
		slog.String("activity", name),
		slog.String("email", email),
	)
	return nil
}

// Unregister removes a student email from the named activity.
func (s *ActivityService) Unregister(ctx context.Context, name, email string) error {
	err := s.store.RemoveParticipant(ctx, name, email)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, registry.ErrNotRegistered):
		return ErrNotSignedUp
	case err != nil:
		return err
	}

	metrics.UnregistersTotal.WithLabelValues(name).Inc()
	slog.Info("student unregistered",
		slog.String("activity", name),
		slog.String("email", email),
	)
	return nil
}
