package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		raw  string
		want Operator
		ok   bool
	}{
		{"+", OperatorPlus, true},
		{"-", OperatorMinus, true},
		{"*", OperatorTimes, true},
		{"x", OperatorTimes, true},
		{"X", OperatorTimes, true},
		{"/", OperatorDividedBy, true},
		{"%", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseOperator(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperator_Word(t *testing.T) {
	assert.Equal(t, "plus", OperatorPlus.Word())
	assert.Equal(t, "minus", OperatorMinus.Word())
	assert.Equal(t, "times", OperatorTimes.Word())
	assert.Equal(t, "divided by", OperatorDividedBy.Word())
	assert.Equal(t, "", Operator("%").Word())
}
