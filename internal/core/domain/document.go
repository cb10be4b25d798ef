package domain

import "time"

// Document is one unit of batch work: a file or stdin payload that has
// been (or is about to be) run through the full normalization chain.
type Document struct {
	// ID uniquely identifies the document within a batch run.
	ID string

	// URI is the source location ("-" for stdin).
	URI string

	// Input is the raw text.
	Input string

	// Output is the normalized text, empty until processed.
	Output string

	// ProcessedAt is when normalization completed.
	ProcessedAt time.Time
}

// LexiconEntry is a user-defined replacement: whenever Written appears as
// a whole token, Spoken is substituted before the core engine runs.
type LexiconEntry struct {
	// Written is the token as it appears in text.
	Written string

	// Spoken is the replacement spoken form.
	Spoken string

	// CreatedAt is when the entry was added.
	CreatedAt time.Time
}
