package driving

import (
	"context"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

// Normalizer is the core lexical-semantic normalization engine: it
// rewrites numeric, time, date and arithmetic spans into spoken words and
// passes everything else through byte-identical.
type Normalizer interface {
	// Normalize rewrites one input string. It never fails on content:
	// spans that cannot be confidently normalized pass through unchanged.
	Normalize(ctx context.Context, text string) (string, error)
}

// TextService runs the full normalization chain: collaborator passes
// around the core engine, per the configured settings.
type TextService interface {
	// Process runs the configured pass chain over one input string.
	Process(ctx context.Context, text string) (string, error)
}

// BatchService normalizes documents (files or stdin payloads).
type BatchService interface {
	// ProcessDocument normalizes one document and returns it with the
	// Output field populated.
	ProcessDocument(ctx context.Context, doc domain.Document) (domain.Document, error)

	// ProcessFile reads, normalizes and returns the document for a file.
	ProcessFile(ctx context.Context, path string) (domain.Document, error)
}

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get returns the current settings (defaults when unset).
	Get() (domain.Settings, error)

	// SetDatePolicy sets the field-order policy for date literals.
	SetDatePolicy(policy domain.DatePolicy) error

	// SetPass toggles a collaborator pass by name.
	SetPass(name string, enabled bool) error

	// SetLowercase toggles lower-casing of the final output.
	SetLowercase(enabled bool) error

	// Validate checks the stored configuration for consistency.
	Validate() error
}

// LexiconService manages the user replacement lexicon.
type LexiconService interface {
	// Add stores a replacement entry.
	Add(ctx context.Context, written, spoken string) error

	// Remove deletes a replacement entry.
	Remove(ctx context.Context, written string) error

	// List returns all entries ordered by written form.
	List(ctx context.Context) ([]domain.LexiconEntry, error)
}
