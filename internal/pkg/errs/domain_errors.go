package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Validation errors (400)
	ErrValidation      = errors.New("validation error")
	ErrInvalidRoomID   = errors.New("room ID must be exactly 4 digits (e.g., 0101, 0201)")
	ErrInvalidInterval = errors.New("invalid booking interval")

	// Lookup errors (404)
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Conflict errors (409)
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrBookingConflict   = errors.New("booking already exists or dates overlap with existing booking")

	// Backend errors (500)
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrNotConnected       = errors.New("database not connected")
)
