package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want NumberValue
	}{
		{
			name: "plain cardinal",
			raw:  "13",
			want: NumberValue{Digits: "13"},
		},
		{
			name: "zero",
			raw:  "0",
			want: NumberValue{Digits: "0"},
		},
		{
			name: "leading zeros trimmed",
			raw:  "007",
			want: NumberValue{Digits: "7"},
		},
		{
			name: "decimal keeps fraction digits",
			raw:  "3.05",
			want: NumberValue{Digits: "3", Frac: "05"},
		},
		{
			name: "ordinal first",
			raw:  "1st",
			want: NumberValue{Digits: "1", Ordinal: true},
		},
		{
			name: "ordinal teen",
			raw:  "13th",
			want: NumberValue{Digits: "13", Ordinal: true},
		},
		{
			name: "ordinal twenty first",
			raw:  "21st",
			want: NumberValue{Digits: "21", Ordinal: true},
		},
		{
			name: "uppercase ordinal suffix",
			raw:  "2ND",
			want: NumberValue{Digits: "2", Ordinal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "mismatched suffix", raw: "2st"},
		{name: "mismatched teen suffix", raw: "11st"},
		{name: "double dot", raw: "1.2.3"},
		{name: "trailing dot", raw: "12."},
		{name: "letters", raw: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNumber(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrScanAmbiguous)
		})
	}
}

func TestNumberFromInt(t *testing.T) {
	assert.Equal(t, NumberValue{Digits: "42"}, NumberFromInt(42))
	assert.Equal(t, NumberValue{Negative: true, Digits: "7"}, NumberFromInt(-7))
	assert.True(t, NumberFromInt(0).IsZero())
	assert.False(t, NumberFromInt(-1).IsZero())
}

func TestOrdinalSuffixFor(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"1", "st"},
		{"2", "nd"},
		{"3", "rd"},
		{"4", "th"},
		{"11", "th"},
		{"12", "th"},
		{"13", "th"},
		{"21", "st"},
		{"102", "nd"},
		{"111", "th"},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, OrdinalSuffixFor(tt.digits))
		})
	}
}
