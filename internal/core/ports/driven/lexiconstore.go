package driven

import (
	"context"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

// LexiconStore persists user-defined replacement entries.
type LexiconStore interface {
	// Put creates or updates an entry keyed by its written form.
	Put(ctx context.Context, entry domain.LexiconEntry) error

	// Get retrieves an entry by written form.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, written string) (*domain.LexiconEntry, error)

	// List returns all entries ordered by written form.
	List(ctx context.Context) ([]domain.LexiconEntry, error)

	// Delete removes an entry by written form.
	// Returns domain.ErrNotFound when absent.
	Delete(ctx context.Context, written string) error

	// Close releases underlying resources.
	Close() error
}
