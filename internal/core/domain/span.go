package domain

// SpanKind classifies a contiguous slice of input text.
type SpanKind string

// Span kinds, in scanner priority order for numeric-shaped text.
const (
	// SpanDate is three digit groups separated by '/' or '-'.
	SpanDate SpanKind = "date"

	// SpanTime is digits ':' digits, optionally ':' seconds and an
	// attached meridiem marker.
	SpanTime SpanKind = "time"

	// SpanNumber is a digit run, optionally with one decimal point and
	// an ordinal suffix.
	SpanNumber SpanKind = "number"

	// SpanOperator is an arithmetic symbol between two number spans.
	SpanOperator SpanKind = "operator"

	// SpanWord is any other run of letters (including numeric shapes the
	// scanner could not confidently classify).
	SpanWord SpanKind = "word"

	// SpanPunctuation is a run of punctuation characters.
	SpanPunctuation SpanKind = "punctuation"

	// SpanWhitespace is a run of whitespace, preserved verbatim.
	SpanWhitespace SpanKind = "whitespace"
)

// IsValid returns true if the span kind is recognised.
func (k SpanKind) IsValid() bool {
	switch k {
	case SpanDate, SpanTime, SpanNumber, SpanOperator, SpanWord, SpanPunctuation, SpanWhitespace:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SpanKind) String() string {
	return string(k)
}

// Span is a classified substring of one input text. Spans are immutable
// once produced by the scanner and never outlive the text they were cut
// from: consecutive spans partition the input with no gaps and no overlaps.
type Span struct {
	// Kind is the lexical classification.
	Kind SpanKind

	// Start and End are byte offsets into the input ([Start, End)).
	Start int
	End   int

	// Raw is the original substring.
	Raw string

	// Expr marks number and operator spans that belong to one arithmetic
	// expression group (e.g. the three meaningful spans of "12 * 13").
	Expr bool
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}
