package arithmetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

func span(kind domain.SpanKind, raw string) domain.Span {
	return domain.Span{Kind: kind, Raw: raw, Expr: true}
}

func TestRewriteExpression(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		op    string
		right string
		want  string
	}{
		{name: "multiplication", left: "12", op: "*", right: "13", want: "twelve times thirteen"},
		{name: "x multiplication", left: "24", op: "x", right: "12", want: "twenty four times twelve"},
		{name: "division", left: "14", op: "/", right: "5", want: "fourteen divided by five"},
		{name: "addition", left: "5", op: "+", right: "3", want: "five plus three"},
		{name: "subtraction", left: "9", op: "-", right: "4", want: "nine minus four"},
		{name: "division by zero not evaluated", left: "10", op: "/", right: "0", want: "ten divided by zero"},
		{name: "decimal operand", left: "2.5", op: "*", right: "4", want: "two point five times four"},
	}

	r := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.RewriteExpression(
				span(domain.SpanNumber, tc.left),
				span(domain.SpanOperator, tc.op),
				span(domain.SpanNumber, tc.right),
			)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRewriteExpression_BadOperator(t *testing.T) {
	r := New()
	_, err := r.RewriteExpression(
		span(domain.SpanNumber, "1"),
		span(domain.SpanOperator, "%"),
		span(domain.SpanNumber, "2"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.ExpressionRewriter = (*Rewriter)(nil)
}
