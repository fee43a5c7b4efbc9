package domain

import "errors"

// Domain-specific errors for task validation and lookup.
var (
	// Validation errors. A task violating a construction invariant is never
	// observable: NewTask rejects the whole value with one of these.
	ErrBlankTitle          = errors.New("task title must not be blank")
	ErrInvalidStatus       = errors.New("invalid task status")
	ErrInvalidPriority     = errors.New("task priority must be positive")
	ErrNegativePlannedTime = errors.New("task planned time must not be negative")
	ErrNegativeActualTime  = errors.New("task actual time must not be negative")

	// Storage errors
	ErrTaskNotFound = errors.New("task not found")
)
