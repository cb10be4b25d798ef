// Package spelling corrects misspelled words using a trained fuzzy
// model. The default corpus covers the engine's own spoken-form
// vocabulary plus a core set of common English words, so the pass fixes
// slips like "twelve" typed as "twelev" without touching rare words it
// has never seen.
package spelling

import (
	"context"
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

// corpus is the default training vocabulary: the words the engine itself
// emits plus high-frequency English words.
var corpus = []string{
	// Spoken-form vocabulary.
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
	"thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	"hundred", "thousand", "million", "billion", "trillion",
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth",
	"point", "minus", "plus", "times", "divided",
	"noon", "midnight", "seconds", "clock",
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	// Common English words.
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "all", "would", "there", "their", "what", "so",
	"up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people", "into", "year", "your", "good", "some", "could",
	"them", "see", "other", "than", "then", "now", "look", "only",
	"come", "its", "over", "think", "also", "back", "after", "use",
	"how", "our", "work", "well", "way", "even", "new", "want",
	"because", "any", "these", "give", "day", "most", "us", "meeting",
	"morning", "afternoon", "evening", "night", "today", "tomorrow",
	"yesterday", "week", "month", "hour", "minute",
}

// minLength is the shortest word the pass will attempt to correct.
// Short words produce too many false positives.
const minLength = 4

// Pass corrects spelling against a trained model.
type Pass struct {
	model *fuzzy.Model
}

// New creates a spelling pass trained on the default corpus plus any
// extra words the caller supplies (e.g. lexicon entries).
func New(extra ...string) *Pass {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(corpus)
	if len(extra) > 0 {
		model.Train(extra)
	}
	return &Pass{model: model}
}

// Name returns the pass name.
func (p *Pass) Name() string {
	return "spelling"
}

// Apply corrects each alphabetic word in the text. Words containing
// digits, known words and words below the length floor pass through.
func (p *Pass) Apply(_ context.Context, text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && unicode.IsLetter(runes[j]) {
			j++
		}
		b.WriteString(p.correct(string(runes[i:j])))
		i = j
	}

	return b.String(), nil
}

// correct returns the model's suggestion for a word, or the word itself
// when the model has nothing better.
func (p *Pass) correct(word string) string {
	if len(word) < minLength {
		return word
	}
	lower := strings.ToLower(word)
	suggestion := p.model.SpellCheck(lower)
	if suggestion == "" || suggestion == lower {
		return word
	}
	if r := []rune(word)[0]; unicode.IsUpper(r) {
		first := []rune(suggestion)
		first[0] = unicode.ToUpper(first[0])
		return string(first)
	}
	return suggestion
}
