// Package handler provides HTTP request handlers for the activities API.
//
// The handler package contains all HTTP endpoint implementations. The
// ActivityHandler serves the activity collection and the roster mutations;
// Health and Root are plain handler functions.
//
// # Handler Pattern
//
// Handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteJSON: Raw JSON response (collections and single activities)
//   - WriteMessage: {"message": ...} confirmation for roster mutations
//   - WriteError: RFC 9457 Problem Details error response
//
// The collection endpoint intentionally returns a bare name->activity
// mapping rather than an envelope; clients index the body by activity name.
//
// # Example Usage
//
//	h := NewActivityHandler(activityService)
//	mux.HandleFunc("GET /activities", h.List)
//	mux.HandleFunc("POST /activities/{name}/signup", h.SignUp)
package handler
