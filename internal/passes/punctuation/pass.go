// Package punctuation strips punctuation marks from text after the core
// engine has run. Apostrophes inside words survive ("o'clock", "don't");
// everything else classified as punctuation is dropped, and any doubled
// spaces the removal leaves behind are collapsed.
package punctuation

import (
	"context"
	"strings"
	"unicode"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

// Pass strips punctuation.
type Pass struct{}

// New creates a new punctuation stripping pass.
func New() *Pass {
	return &Pass{}
}

// Name returns the pass name.
func (p *Pass) Name() string {
	return "punctuation"
}

// Apply removes punctuation runes from the text.
func (p *Pass) Apply(_ context.Context, text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	lastSpace := false
	for i, r := range runes {
		if r == '\'' && letterAt(runes, i-1) && letterAt(runes, i+1) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		if r == ' ' && lastSpace {
			continue
		}
		b.WriteRune(r)
		lastSpace = r == ' '
	}

	return strings.TrimRight(b.String(), " "), nil
}

func letterAt(runes []rune, i int) bool {
	return i >= 0 && i < len(runes) && unicode.IsLetter(runes[i])
}
