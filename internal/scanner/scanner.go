// Package scanner splits raw text into an ordered sequence of classified
// spans. Consecutive spans partition the input: no gaps, no overlaps.
//
// Classification is purely lexical and applies in priority order at each
// position: date literal, time literal, arithmetic expression, plain
// number, then word/punctuation/whitespace by character class. Numeric
// shapes that cannot be confidently classified (two decimal points, a
// fourth date group, a mismatched ordinal suffix) degrade to Word spans
// so the pipeline leaves them untouched.
package scanner

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

var (
	timeRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?([aApP][mM])?`)
	numberRe  = regexp.MustCompile(`^(\d+)(?:\.(\d+))?([sS][tT]|[nN][dD]|[rR][dD]|[tT][hH])?`)
	operandRe = regexp.MustCompile(`^\d+(?:\.\d+)?`)
)

// Scanner produces the span partition of an input string.
// It holds no state and is safe for concurrent use.
type Scanner struct{}

// New creates a new scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan splits text into classified spans covering the entire input.
func (s *Scanner) Scan(text string) []domain.Span {
	spans := make([]domain.Span, 0, 16)
	pos := 0

	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		switch {
		case unicode.IsSpace(r):
			end := pos + size
			for end < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[end:])
				if !unicode.IsSpace(r2) {
					break
				}
				end += s2
			}
			spans = append(spans, mkSpan(domain.SpanWhitespace, text, pos, end))
			pos = end

		case r >= '0' && r <= '9':
			numeric, end := scanNumeric(text, pos)
			spans = append(spans, numeric...)
			pos = end

		case unicode.IsLetter(r) || r == '_':
			end := wordEnd(text, pos)
			spans = append(spans, mkSpan(domain.SpanWord, text, pos, end))
			pos = end

		default:
			end := pos + size
			for end < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[end:])
				if unicode.IsSpace(r2) || unicode.IsLetter(r2) || unicode.IsDigit(r2) || r2 == '_' {
					break
				}
				end += s2
			}
			spans = append(spans, mkSpan(domain.SpanPunctuation, text, pos, end))
			pos = end
		}
	}

	return spans
}

func mkSpan(kind domain.SpanKind, text string, start, end int) domain.Span {
	return domain.Span{
		Kind:  kind,
		Start: start,
		End:   end,
		Raw:   text[start:end],
	}
}

// scanNumeric classifies a span starting at a digit. It returns one or
// more spans (an expression group yields up to five) and the new position.
func scanNumeric(text string, pos int) ([]domain.Span, int) {
	if sp, end, ok := scanDate(text, pos); ok {
		return []domain.Span{sp}, end
	}
	if end, ambiguous := ambiguousDateRun(text, pos); ambiguous {
		return []domain.Span{mkSpan(domain.SpanWord, text, pos, end)}, end
	}
	if sp, end, ok := scanTime(text, pos); ok {
		return []domain.Span{sp}, end
	}
	return scanNumber(text, pos)
}

// scanDate matches three digit groups of at most four digits each,
// separated by a consistent '/' or '-'.
func scanDate(text string, pos int) (domain.Span, int, bool) {
	groups, seps, end := dateRun(text, pos)
	if len(groups) != 3 || seps[0] != seps[1] {
		return domain.Span{}, 0, false
	}
	for _, g := range groups {
		if g > 4 {
			return domain.Span{}, 0, false
		}
	}
	if alnumAt(text, end) {
		return domain.Span{}, 0, false
	}
	return mkSpan(domain.SpanDate, text, pos, end), end, true
}

// ambiguousDateRun reports a date-shaped run that failed classification
// (a fourth group, mixed separators, an oversized group, or letters flush
// against the run). Such runs degrade to a single Word span.
func ambiguousDateRun(text string, pos int) (int, bool) {
	groups, seps, end := dateRun(text, pos)
	if len(groups) < 3 {
		return 0, false
	}
	if len(groups) == 3 && seps[0] == seps[1] && groups[0] <= 4 && groups[1] <= 4 && groups[2] <= 4 && !alnumAt(text, end) {
		return 0, false
	}
	return ambiguousRunEnd(text, pos), true
}

// dateRun greedily consumes digit groups separated by '/' or '-',
// returning the group widths, the separators, and the end offset.
func dateRun(text string, pos int) (groups []int, seps []byte, end int) {
	i := pos
	width := digitRun(text, i)
	if width == 0 {
		return nil, nil, pos
	}
	groups = append(groups, width)
	i += width
	for i < len(text) && (text[i] == '/' || text[i] == '-') {
		w := digitRun(text, i+1)
		if w == 0 {
			break
		}
		seps = append(seps, text[i])
		groups = append(groups, w)
		i += 1 + w
	}
	if len(groups) < 2 {
		return groups, seps, pos + width
	}
	return groups, seps, i
}

// scanTime matches hh:mm, hh:mm:ss, with an optionally attached meridiem.
// Range validation is the clock rewriter's job; the scanner only checks
// the lexical shape.
func scanTime(text string, pos int) (domain.Span, int, bool) {
	m := timeRe.FindString(text[pos:])
	if m == "" {
		return domain.Span{}, 0, false
	}
	end := pos + len(m)
	if alnumAt(text, end) || colonDigitAt(text, end) {
		// e.g. "10:35abc" or "1:02:03:04" - not a clock reading.
		end = ambiguousRunEnd(text, pos)
		return mkSpan(domain.SpanWord, text, pos, end), end, true
	}
	return mkSpan(domain.SpanTime, text, pos, end), end, true
}

// scanNumber matches a plain number (with optional decimal part or
// ordinal suffix), attempting an arithmetic-expression extension first.
func scanNumber(text string, pos int) ([]domain.Span, int) {
	m := numberRe.FindStringSubmatch(text[pos:])
	intPart, frac, suffix := m[1], m[2], m[3]
	end := pos + len(m[0])

	ambiguous := func() ([]domain.Span, int) {
		e := ambiguousRunEnd(text, pos)
		return []domain.Span{mkSpan(domain.SpanWord, text, pos, e)}, e
	}

	// Two decimal points, or a suffix on a decimal, is malformed.
	if dotDigitAt(text, end) || (frac != "" && suffix != "") {
		return ambiguous()
	}

	if suffix != "" {
		if !suffixAgrees(intPart, suffix) || alnumAt(text, end) {
			return ambiguous()
		}
		return []domain.Span{mkSpan(domain.SpanNumber, text, pos, end)}, end
	}

	if group, gEnd, ok := scanExpression(text, pos, end); ok {
		return group, gEnd
	}

	if letterAt(text, end) {
		return ambiguous()
	}
	return []domain.Span{mkSpan(domain.SpanNumber, text, pos, end)}, end
}

// scanExpression extends a number span into an expression group:
// optional spaces, one of + - * /, optional spaces, a second number.
// 'x'/'X' is accepted as multiplication only when written flush against
// both operands ("24x12"). The right operand must not itself begin a
// date or time literal.
func scanExpression(text string, pos, numEnd int) ([]domain.Span, int, bool) {
	opStart := spaceRun(text, numEnd)
	if opStart >= len(text) {
		return nil, 0, false
	}

	opLen := 0
	switch text[opStart] {
	case '+', '-', '*', '/':
		opLen = 1
	case 'x', 'X':
		if opStart == numEnd && digitAt(text, opStart+1) {
			opLen = 1
		}
	}
	if opLen == 0 {
		return nil, 0, false
	}
	opEnd := opStart + opLen

	rightStart := spaceRun(text, opEnd)
	operand := operandRe.FindString(text[rightStart:])
	if operand == "" {
		return nil, 0, false
	}
	rightEnd := rightStart + len(operand)

	// Reject when the right operand is the start of something bigger.
	if alnumAt(text, rightEnd) || dotDigitAt(text, rightEnd) ||
		sepDigitAt(text, rightEnd) || colonDigitAt(text, rightEnd) {
		return nil, 0, false
	}

	group := make([]domain.Span, 0, 5)
	left := mkSpan(domain.SpanNumber, text, pos, numEnd)
	left.Expr = true
	group = append(group, left)
	if opStart > numEnd {
		group = append(group, mkSpan(domain.SpanWhitespace, text, numEnd, opStart))
	}
	op := mkSpan(domain.SpanOperator, text, opStart, opEnd)
	op.Expr = true
	group = append(group, op)
	if rightStart > opEnd {
		group = append(group, mkSpan(domain.SpanWhitespace, text, opEnd, rightStart))
	}
	right := mkSpan(domain.SpanNumber, text, rightStart, rightEnd)
	right.Expr = true
	group = append(group, right)

	return group, rightEnd, true
}

// wordEnd consumes letters, digits and internal apostrophes ("don't").
func wordEnd(text string, pos int) int {
	i := pos
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			i += size
			continue
		}
		if r == '\'' && i+size < len(text) {
			r2, _ := utf8.DecodeRuneInString(text[i+size:])
			if unicode.IsLetter(r2) {
				i += size
				continue
			}
		}
		break
	}
	return i
}

// ambiguousRunEnd consumes a numeric-shaped run that failed
// classification: alphanumerics plus '.', ':', '/', '-' when another
// alphanumeric follows. Trailing punctuation is left out of the run.
func ambiguousRunEnd(text string, pos int) int {
	i := pos
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			i += size
			continue
		}
		if (r == '.' || r == ':' || r == '/' || r == '-') && alnumAt(text, i+size) {
			i += size
			continue
		}
		break
	}
	return i
}

func digitRun(text string, pos int) int {
	i := pos
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	return i - pos
}

func spaceRun(text string, pos int) int {
	i := pos
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i
}

func digitAt(text string, pos int) bool {
	return pos < len(text) && text[pos] >= '0' && text[pos] <= '9'
}

func letterAt(text string, pos int) bool {
	if pos >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsLetter(r) || r == '_'
}

func alnumAt(text string, pos int) bool {
	return digitAt(text, pos) || letterAt(text, pos)
}

func dotDigitAt(text string, pos int) bool {
	return pos < len(text) && text[pos] == '.' && digitAt(text, pos+1)
}

func colonDigitAt(text string, pos int) bool {
	return pos < len(text) && text[pos] == ':' && digitAt(text, pos+1)
}

func sepDigitAt(text string, pos int) bool {
	return pos < len(text) && (text[pos] == '/' || text[pos] == '-') && digitAt(text, pos+1)
}

// suffixAgrees checks that an ordinal suffix matches its digits
// ("21st" and "13th" agree, "2st" does not).
func suffixAgrees(digits, suffix string) bool {
	lower := []byte{suffix[0] | 0x20, suffix[1] | 0x20}
	return domain.OrdinalSuffixFor(digits) == string(lower)
}
