package driven

import "context"

// Pass is an independent normalization pass that runs before or after
// the core engine (contraction expansion, punctuation stripping,
// spell-correction, lexicon replacement). Passes report their own
// failures; the core never suppresses them.
type Pass interface {
	// Name returns the pass name for logging and configuration.
	Name() string

	// Apply transforms the text.
	Apply(ctx context.Context, text string) (string, error)
}
