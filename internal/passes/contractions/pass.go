// Package contractions expands common English contractions into their
// full written forms ("don't" -> "do not") so that downstream synthesis
// never has to guess at an apostrophe.
package contractions

import (
	"context"
	"strings"
	"unicode"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

// Ensure Pass implements the interface.
var _ driven.Pass = (*Pass)(nil)

// expansions maps lowercase contractions to their expanded forms.
// Ambiguous forms ("'s" as is/has, "'d" as had/would) resolve to the
// more frequent reading.
var expansions = map[string]string{
	"ain't":     "am not",
	"aren't":    "are not",
	"can't":     "cannot",
	"couldn't":  "could not",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"hadn't":    "had not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"he'd":      "he would",
	"he'll":     "he will",
	"he's":      "he is",
	"here's":    "here is",
	"how's":     "how is",
	"i'd":       "i would",
	"i'll":      "i will",
	"i'm":       "i am",
	"i've":      "i have",
	"isn't":     "is not",
	"it'd":      "it would",
	"it'll":     "it will",
	"it's":      "it is",
	"let's":     "let us",
	"mightn't":  "might not",
	"mustn't":   "must not",
	"needn't":   "need not",
	"she'd":     "she would",
	"she'll":    "she will",
	"she's":     "she is",
	"shouldn't": "should not",
	"that'll":   "that will",
	"that's":    "that is",
	"there's":   "there is",
	"they'd":    "they would",
	"they'll":   "they will",
	"they're":   "they are",
	"they've":   "they have",
	"wasn't":    "was not",
	"we'd":      "we would",
	"we'll":     "we will",
	"we're":     "we are",
	"we've":     "we have",
	"weren't":   "were not",
	"what's":    "what is",
	"where's":   "where is",
	"who's":     "who is",
	"won't":     "will not",
	"wouldn't":  "would not",
	"you'd":     "you would",
	"you'll":    "you will",
	"you're":    "you are",
	"you've":    "you have",
}

// Pass expands contractions.
type Pass struct{}

// New creates a new contraction expansion pass.
func New() *Pass {
	return &Pass{}
}

// Name returns the pass name.
func (p *Pass) Name() string {
	return "contractions"
}

// Apply expands every known contraction in the text. Unknown
// apostrophe words (possessives, names) are left alone.
func (p *Pass) Apply(_ context.Context, text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}
		b.WriteString(expand(string(runes[i:j])))
		i = j
	}

	return b.String(), nil
}

// expand returns the expanded form of a word, matching the leading
// capital of the original ("Don't" -> "Do not").
func expand(word string) string {
	lower := strings.ToLower(word)
	replacement, ok := expansions[lower]
	if !ok {
		return word
	}
	if r := []rune(word)[0]; unicode.IsUpper(r) {
		first := []rune(replacement)
		first[0] = unicode.ToUpper(first[0])
		return string(first)
	}
	return replacement
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}
