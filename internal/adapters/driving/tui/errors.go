package tui

import "errors"

// Errors returned when required ports are missing.
var (
	// ErrMissingTextService indicates the text service port is nil.
	ErrMissingTextService = errors.New("text service is required")
)
