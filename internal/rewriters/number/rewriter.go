// Package number rewrites plain number spans (cardinals, ordinals and
// decimals) into spoken words.
package number

import (
	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/numwords"
)

// Ensure Rewriter implements the interface.
var _ driven.Rewriter = (*Rewriter)(nil)

// Rewriter handles number spans.
type Rewriter struct{}

// New creates a new number rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// Kind returns the span kind this rewriter handles.
func (r *Rewriter) Kind() domain.SpanKind {
	return domain.SpanNumber
}

// Rewrite renders the number span as spoken words.
func (r *Rewriter) Rewrite(span domain.Span) (string, error) {
	v, err := domain.ParseNumber(span.Raw)
	if err != nil {
		return "", err
	}
	return numwords.Render(v), nil
}
