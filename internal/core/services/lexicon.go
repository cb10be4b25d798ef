package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
)

// Ensure LexiconService implements the interface.
var _ driving.LexiconService = (*LexiconService)(nil)

// LexiconService manages the user replacement lexicon.
type LexiconService struct {
	store driven.LexiconStore
}

// NewLexiconService creates a new lexicon service.
func NewLexiconService(store driven.LexiconStore) *LexiconService {
	return &LexiconService{store: store}
}

// Add stores a replacement entry. Written forms are trimmed and
// compared case-insensitively.
func (s *LexiconService) Add(ctx context.Context, written, spoken string) error {
	written = strings.TrimSpace(written)
	spoken = strings.TrimSpace(spoken)
	if written == "" || spoken == "" {
		return fmt.Errorf("lexicon entry needs both written and spoken forms: %w", domain.ErrInvalidInput)
	}

	entry := domain.LexiconEntry{
		Written:   strings.ToLower(written),
		Spoken:    spoken,
		CreatedAt: time.Now(),
	}
	if err := s.store.Put(ctx, entry); err != nil {
		return fmt.Errorf("adding lexicon entry %q: %w", written, err)
	}
	return nil
}

// Remove deletes a replacement entry.
func (s *LexiconService) Remove(ctx context.Context, written string) error {
	written = strings.TrimSpace(written)
	if written == "" {
		return fmt.Errorf("written form required: %w", domain.ErrInvalidInput)
	}
	if err := s.store.Delete(ctx, written); err != nil {
		return fmt.Errorf("removing lexicon entry %q: %w", written, err)
	}
	return nil
}

// List returns all entries ordered by written form.
func (s *LexiconService) List(ctx context.Context) ([]domain.LexiconEntry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing lexicon: %w", err)
	}
	return entries, nil
}
