// Package lexicon replaces user-defined written forms with their spoken
// forms before the core engine runs, so that project-specific tokens
// ("GmbH", "km/h") speak the way the user decided they should.
package lexicon

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

// Pass applies lexicon replacements from a store.
type Pass struct {
	store driven.LexiconStore
}

// New creates a lexicon replacement pass backed by the given store.
func New(store driven.LexiconStore) *Pass {
	return &Pass{store: store}
}

// Name returns the pass name.
func (p *Pass) Name() string {
	return "lexicon"
}

// Apply replaces each whole word that matches a lexicon entry (written
// forms compare case-insensitively) with its spoken form. Storage
// failures are reported, not swallowed.
func (p *Pass) Apply(ctx context.Context, text string) (string, error) {
	entries, err := p.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("loading lexicon: %w", err)
	}
	if len(entries) == 0 {
		return text, nil
	}

	spoken := make(map[string]string, len(entries))
	for _, e := range entries {
		spoken[strings.ToLower(e.Written)] = e.Spoken
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !tokenRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && tokenRune(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		// A sentence-final dot belongs to the sentence, not the token.
		trailing := ""
		if trimmed := strings.TrimRight(word, "."); trimmed != word && !strings.Contains(trimmed, ".") {
			trailing = word[len(trimmed):]
			word = trimmed
		}
		if replacement, ok := spoken[strings.ToLower(word)]; ok {
			b.WriteString(replacement)
		} else {
			b.WriteString(word)
		}
		b.WriteString(trailing)
		i = j
	}

	return b.String(), nil
}

// tokenRune reports whether a rune belongs to a lexicon token. Tokens
// are broader than plain words: units and abbreviations may carry
// digits, slashes or dots ("km/h", "e.g.").
func tokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '/' || r == '.' || r == '\''
}
