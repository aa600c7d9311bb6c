// Package service implements the business logic layer for the activities API.
//
// The service package contains the roster operations and orchestration of
// store access. Services are the primary abstraction between HTTP handlers
// and storage.
//
// # Service Pattern
//
// Services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts the store dependencies
//   - Methods implement business operations and map storage errors to
//     domain errors
//   - Context is passed through on every operation
//
// # Store Interfaces
//
// Services define their own store interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from the concrete registry implementation
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrActivityNotFound = errors.New("activity not found")
//	    ErrAlreadySignedUp  = errors.New("student is already signed up")
//	)
//
// # Example Usage
//
//	svc := NewActivityService(store)
//	if err := svc.SignUp(ctx, "Chess Club", "student@mergington.edu"); err != nil {
//	    // errors.Is(err, ErrAlreadySignedUp) etc.
//	}
package service
