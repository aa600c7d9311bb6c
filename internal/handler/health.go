package handler

import (
	"net/http"
	"time"
)

// Health handles GET /health - liveness probe
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Root handles GET /{$} - redirects the index to the activity collection
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/activities", http.StatusTemporaryRedirect)
}
