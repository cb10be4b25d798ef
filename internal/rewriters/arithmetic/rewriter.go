// Package arithmetic rewrites simple binary expressions ("12*13",
// "14/5") by rendering both operands as numerals and respelling the
// operator. The expression is never evaluated: "10/2" becomes
// "ten divided by two", not "five".
package arithmetic

import (
	"fmt"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/numwords"
)

// Ensure Rewriter implements the interface.
var _ driven.ExpressionRewriter = (*Rewriter)(nil)

// Rewriter handles arithmetic expression groups.
type Rewriter struct{}

// New creates a new arithmetic rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// RewriteExpression renders "left operator right" as spoken words,
// joined by single spaces.
func (r *Rewriter) RewriteExpression(left, operator, right domain.Span) (string, error) {
	expr, err := parse(left, operator, right)
	if err != nil {
		return "", err
	}
	return numwords.Render(expr.Left) + " " + expr.Operator.Word() + " " + numwords.Render(expr.Right), nil
}

func parse(left, operator, right domain.Span) (domain.Expression, error) {
	l, err := domain.ParseNumber(left.Raw)
	if err != nil {
		return domain.Expression{}, err
	}
	op, ok := domain.ParseOperator(operator.Raw)
	if !ok {
		return domain.Expression{}, fmt.Errorf("operator %q: %w", operator.Raw, domain.ErrInvalidInput)
	}
	rv, err := domain.ParseNumber(right.Raw)
	if err != nil {
		return domain.Expression{}, err
	}
	return domain.Expression{Left: l, Operator: op, Right: rv}, nil
}
