// Package model defines domain entities and data structures for the
// Mergington High School Activities API.
//
// The model package contains the Activity entity and the API error
// definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Activity is the only domain entity. Activities are identified by display
// name, which serves as the registry key and the wire key:
//
//	{"Chess Club": {"description": ..., "schedule": ..., ...}}
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Activity struct {
//	    Description     string   `json:"description"`
//	    Schedule        string   `json:"schedule"`
//	    MaxParticipants int      `json:"max_participants"`
//	    Participants    []string `json:"participants"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail,omitempty"`
//	}
//
// Constructors exist for each error class (NewNotFoundError,
// NewBadRequestError, NewValidationError, NewInternalError,
// NewRateLimitError). The Detail member carries the human-readable message
// clients display and tests assert on.
package model
