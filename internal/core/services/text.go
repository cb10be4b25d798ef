package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
	"github.com/vocalise-labs/vocalise-cli/internal/logger"
)

// Ensure TextService implements the interface.
var _ driving.TextService = (*TextService)(nil)

// TextService runs the full normalization chain: pre-passes, the core
// engine, post-passes, optional lower-casing. Pass failures are real
// failures and propagate; only the core engine degrades gracefully.
type TextService struct {
	normalizer driving.Normalizer
	pre        []driven.Pass
	post       []driven.Pass
	lowercase  bool
}

// TextOption configures the text service.
type TextOption func(*TextService)

// WithPrePass appends a pass that runs before the core engine.
func WithPrePass(p driven.Pass) TextOption {
	return func(s *TextService) {
		s.pre = append(s.pre, p)
	}
}

// WithPostPass appends a pass that runs after the core engine.
func WithPostPass(p driven.Pass) TextOption {
	return func(s *TextService) {
		s.post = append(s.post, p)
	}
}

// WithLowercase lower-cases the final output.
func WithLowercase(enabled bool) TextOption {
	return func(s *TextService) {
		s.lowercase = enabled
	}
}

// NewTextService creates a text service around the core engine.
func NewTextService(normalizer driving.Normalizer, opts ...TextOption) *TextService {
	s := &TextService{normalizer: normalizer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs the configured chain over one input string.
func (s *TextService) Process(ctx context.Context, text string) (string, error) {
	logger.Section("Normalization")
	logger.Debug("Input: %d bytes, %d pre-passes, %d post-passes",
		len(text), len(s.pre), len(s.post))

	var err error
	for _, p := range s.pre {
		if text, err = p.Apply(ctx, text); err != nil {
			return "", fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		logger.Debug("After %s: %d bytes", p.Name(), len(text))
	}

	if text, err = s.normalizer.Normalize(ctx, text); err != nil {
		return "", fmt.Errorf("normalizing: %w", err)
	}
	logger.Debug("After core engine: %d bytes", len(text))

	for _, p := range s.post {
		if text, err = p.Apply(ctx, text); err != nil {
			return "", fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		logger.Debug("After %s: %d bytes", p.Name(), len(text))
	}

	if s.lowercase {
		text = strings.ToLower(text)
	}

	return text, nil
}
