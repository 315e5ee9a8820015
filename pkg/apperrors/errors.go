package apperrors

import "errors"

// Sentinel errors shared across the service and store layers. Callers match
// them with errors.Is; the wrapping message carries the specifics.
var (
	// ErrNotAuthenticated is returned when an operation requiring a resolved
	// identity is invoked without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when a referenced record does not exist in the
	// record store.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when a status change is attempted on a
	// collaboration request that is no longer pending.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTransport is returned when the record store cannot be reached or
	// responds with an unexpected status. The underlying cause is attached.
	ErrTransport = errors.New("record store request failed")

	// ErrPersistence is returned when a write was rejected by the record store
	// after local validation passed.
	ErrPersistence = errors.New("record store write failed")
)
