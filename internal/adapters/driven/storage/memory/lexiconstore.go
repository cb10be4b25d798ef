package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

// Ensure LexiconStore implements the interface.
var _ driven.LexiconStore = (*LexiconStore)(nil)

// LexiconStore is an in-memory implementation of driven.LexiconStore.
// Entries are keyed by their lowercase written form.
type LexiconStore struct {
	mu      sync.RWMutex
	entries map[string]domain.LexiconEntry
}

// NewLexiconStore creates a new in-memory lexicon store.
func NewLexiconStore() *LexiconStore {
	return &LexiconStore{
		entries: make(map[string]domain.LexiconEntry),
	}
}

// Put creates or updates an entry keyed by its written form.
func (s *LexiconStore) Put(_ context.Context, entry domain.LexiconEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[strings.ToLower(entry.Written)] = entry
	return nil
}

// Get retrieves an entry by written form.
func (s *LexiconStore) Get(_ context.Context, written string) (*domain.LexiconEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[strings.ToLower(written)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// List returns all entries ordered by written form.
func (s *LexiconStore) List(_ context.Context) ([]domain.LexiconEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.LexiconEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Written < result[j].Written
	})
	return result, nil
}

// Delete removes an entry by written form.
func (s *LexiconStore) Delete(_ context.Context, written string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(written)
	if _, ok := s.entries[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, key)
	return nil
}

// Close releases underlying resources (no-op for memory store).
func (s *LexiconStore) Close() error {
	return nil
}
