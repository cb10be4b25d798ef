package domain

// Operator is an arithmetic symbol recognised between two number spans.
type Operator string

// Recognised operators. 'x'/'X' are accepted spellings of multiplication
// when written flush against both operands ("24x12").
const (
	OperatorPlus      Operator = "+"
	OperatorMinus     Operator = "-"
	OperatorTimes     Operator = "*"
	OperatorDividedBy Operator = "/"
)

// ParseOperator maps an operator symbol to its Operator value.
func ParseOperator(raw string) (Operator, bool) {
	switch raw {
	case "+":
		return OperatorPlus, true
	case "-":
		return OperatorMinus, true
	case "*", "x", "X":
		return OperatorTimes, true
	case "/":
		return OperatorDividedBy, true
	default:
		return "", false
	}
}

// Word returns the spoken form of the operator.
func (o Operator) Word() string {
	switch o {
	case OperatorPlus:
		return "plus"
	case OperatorMinus:
		return "minus"
	case OperatorTimes:
		return "times"
	case OperatorDividedBy:
		return "divided by"
	default:
		return ""
	}
}

// Expression is a simple binary arithmetic expression. The system only
// respells the symbols and operands; it never evaluates the expression.
type Expression struct {
	Left     NumberValue
	Operator Operator
	Right    NumberValue
}
