package services

import (
	"context"
	"strings"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
	"github.com/vocalise-labs/vocalise-cli/internal/logger"
)

// Ensure NormalizeService implements the interface.
var _ driving.Normalizer = (*NormalizeService)(nil)

// NormalizeService is the core engine: it scans the input into a span
// partition, rewrites the spans that have a rewriter, and stitches the
// result back together. Spans without a rewriter, and spans whose
// rewriter fails, come out byte-identical to the input.
type NormalizeService struct {
	scanner     driven.Scanner
	expressions driven.ExpressionRewriter
	rewriters   map[domain.SpanKind]driven.Rewriter
}

// NewNormalizeService creates the core engine from a scanner, the
// arithmetic expression rewriter and the per-kind span rewriters.
func NewNormalizeService(
	scanner driven.Scanner,
	expressions driven.ExpressionRewriter,
	rewriters ...driven.Rewriter,
) *NormalizeService {
	byKind := make(map[domain.SpanKind]driven.Rewriter, len(rewriters))
	for _, r := range rewriters {
		byKind[r.Kind()] = r
	}
	return &NormalizeService{
		scanner:     scanner,
		expressions: expressions,
		rewriters:   byKind,
	}
}

// Normalize rewrites one input string. Content never makes it fail:
// anything the engine cannot confidently rewrite passes through
// unchanged, so the output is always usable.
func (s *NormalizeService) Normalize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	spans := s.scanner.Scan(text)
	logger.Debug("Scanned %d spans from %d bytes", len(spans), len(text))

	var b strings.Builder
	b.Grow(len(text) * 2)

	for i := 0; i < len(spans); i++ {
		if last, ok := s.writeExpression(&b, spans, i); ok {
			i = last
			continue
		}
		s.writeSpan(&b, spans[i])
	}

	return b.String(), nil
}

// writeExpression renders an arithmetic group starting at index i and
// reports the index of its last span. The scanner guarantees group
// shape (number, operator, number, with optional whitespace between),
// so a shape mismatch here just means i is not the start of a group.
func (s *NormalizeService) writeExpression(b *strings.Builder, spans []domain.Span, i int) (int, bool) {
	if s.expressions == nil || !spans[i].Expr || spans[i].Kind != domain.SpanNumber {
		return 0, false
	}

	j := i + 1
	if j < len(spans) && spans[j].Kind == domain.SpanWhitespace {
		j++
	}
	if j >= len(spans) || spans[j].Kind != domain.SpanOperator {
		return 0, false
	}
	op := j

	j++
	if j < len(spans) && spans[j].Kind == domain.SpanWhitespace {
		j++
	}
	if j >= len(spans) || spans[j].Kind != domain.SpanNumber || !spans[j].Expr {
		return 0, false
	}

	out, err := s.expressions.RewriteExpression(spans[i], spans[op], spans[j])
	if err != nil {
		logger.Debug("Expression %q %q %q passed through: %v",
			spans[i].Raw, spans[op].Raw, spans[j].Raw, err)
		for k := i; k <= j; k++ {
			b.WriteString(spans[k].Raw)
		}
		return j, true
	}

	b.WriteString(out)
	return j, true
}

// writeSpan renders one span, falling back to the raw text when no
// rewriter claims the kind or the rewriter rejects the span.
func (s *NormalizeService) writeSpan(b *strings.Builder, span domain.Span) {
	r, ok := s.rewriters[span.Kind]
	if !ok {
		b.WriteString(span.Raw)
		return
	}

	out, err := r.Rewrite(span)
	if err != nil {
		logger.Debug("Span %q (%s) passed through: %v", span.Raw, span.Kind, err)
		b.WriteString(span.Raw)
		return
	}
	b.WriteString(out)
}
