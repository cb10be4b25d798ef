package driven

import "github.com/vocalise-labs/vocalise-cli/internal/core/domain"

// Scanner splits raw text into the classified span partition.
type Scanner interface {
	// Scan returns spans covering the entire input, no gaps, no overlaps.
	Scan(text string) []domain.Span
}

// Rewriter converts one classified span into its spoken form.
// Rewriters are pure functions of the span text: no I/O, no shared
// mutable state, safe for concurrent use.
type Rewriter interface {
	// Kind returns the span kind this rewriter handles.
	Kind() domain.SpanKind

	// Rewrite returns the spoken form of the span. A rewriter error is
	// never fatal: the pipeline passes the original text through
	// unchanged instead.
	Rewrite(span domain.Span) (string, error)
}

// ExpressionRewriter converts an arithmetic expression group (left
// operand, operator, right operand) into its spoken form.
type ExpressionRewriter interface {
	// RewriteExpression renders both operands and the spoken operator
	// name. It never evaluates the expression.
	RewriteExpression(left, operator, right domain.Span) (string, error)
}
