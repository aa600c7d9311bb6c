package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// ActivityService defines the service operations the handler depends on.
// *service.ActivityService satisfies it.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]model.Activity, error)
	GetActivity(ctx context.Context, name string) (model.Activity, error)
	SignUp(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	svc ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// RegisterRoutes mounts the activity endpoints on mux
func (h *ActivityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /activities", h.List)
	mux.HandleFunc("GET /activities/{name}", h.Get)
	mux.HandleFunc("POST /activities/{name}/signup", h.SignUp)
	mux.HandleFunc("POST /activities/{name}/unregister", h.Unregister)
}

// List handles GET /activities - all activities keyed by display name
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	// The collection is returned as a raw name->activity mapping, not a
	// data envelope. Clients index the body by activity name directly.
	WriteJSON(w, http.StatusOK, activities)
}

// Get handles GET /activities/{name} - a single activity
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	activity, err := h.svc.GetActivity(r.Context(), name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, activity)
}

// SignUp handles POST /activities/{name}/signup - register a student
func (h *ActivityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "email", Message: "email query parameter is required"},
		}))
		return
	}

	if err := h.svc.SignUp(r.Context(), name, email); err != nil {
		h.handleError(w, err)
		return
	}

	WriteMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

// Unregister handles POST /activities/{name}/unregister - remove a student
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "email", Message: "email query parameter is required"},
		}))
		return
	}

	if err := h.svc.Unregister(r.Context(), name, email); err != nil {
		h.handleError(w, err)
		return
	}

	WriteMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}

func (h *ActivityHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		WriteError(w, model.NewNotFoundError("Activity"))
	case errors.Is(err, service.ErrAlreadySignedUp):
		WriteError(w, model.NewBadRequestError("Student is already signed up"))
	case errors.Is(err, service.ErrNotSignedUp):
		WriteError(w, model.NewBadRequestError("Student is not signed up for this activity"))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
