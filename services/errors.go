package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound = errors.New("note not found")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
