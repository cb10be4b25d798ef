package domain

import "errors"

// Domain errors represent normalization failures.
// The pipeline never surfaces these to callers as fatal errors: a span
// that fails to normalize is passed through unchanged instead.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrScanAmbiguous indicates a numeric-shaped span could not be
	// confidently classified. The scanner degrades it to a Word span.
	ErrScanAmbiguous = errors.New("ambiguous numeric span")

	// ErrInvalidDate indicates a date literal that is not a real calendar
	// date under the resolved field order (e.g. 31/02/2021).
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidClock indicates a clock literal outside the 24-hour range
	// (e.g. minute 75, or 24:30).
	ErrInvalidClock = errors.New("invalid clock time")

	// ErrUnsupportedKind indicates a span kind no rewriter handles.
	ErrUnsupportedKind = errors.New("unsupported span kind")
)
