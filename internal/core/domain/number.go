package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberValue is the semantic value extracted from a number span.
//
// The integer magnitude is kept as a decimal digit string so that very
// large literals never silently overflow. The fractional part is kept as
// the raw digit sequence (leading zeros included) because fractions are
// spoken digit by digit: "3.05" is "three point zero five", never
// "three point five".
type NumberValue struct {
	// Negative is the sign of the value.
	Negative bool

	// Digits is the integer magnitude as decimal digits with no leading
	// zeros ("0" for zero).
	Digits string

	// Frac is the fractional digit sequence, empty when absent.
	Frac string

	// Ordinal marks position-number rendering ("twelfth" not "twelve").
	Ordinal bool
}

// NumberFromInt builds a NumberValue from an int64.
func NumberFromInt(n int64) NumberValue {
	v := NumberValue{}
	if n < 0 {
		v.Negative = true
		n = -n
	}
	v.Digits = strconv.FormatInt(n, 10)
	return v
}

// IsZero reports whether the value is exactly zero.
func (v NumberValue) IsZero() bool {
	return !v.Negative && v.Digits == "0" && v.Frac == ""
}

// ParseNumber extracts a NumberValue from a raw number literal:
// a digit run, optionally one '.' and a second digit run, optionally an
// ordinal suffix (st/nd/rd/th, any case). The suffix must agree with the
// terminal digits ("21st" is valid, "2st" is not). Returns ErrScanAmbiguous
// for anything else.
func ParseNumber(raw string) (NumberValue, error) {
	if raw == "" {
		return NumberValue{}, fmt.Errorf("parsing number %q: %w", raw, ErrScanAmbiguous)
	}

	v := NumberValue{}
	rest := raw

	// Ordinal suffix, if present, terminates the literal.
	if len(rest) > 2 {
		suffix := strings.ToLower(rest[len(rest)-2:])
		switch suffix {
		case "st", "nd", "rd", "th":
			digits := rest[:len(rest)-2]
			if !isDigits(digits) {
				return NumberValue{}, fmt.Errorf("parsing number %q: %w", raw, ErrScanAmbiguous)
			}
			if OrdinalSuffixFor(digits) != suffix {
				return NumberValue{}, fmt.Errorf("parsing number %q: suffix mismatch: %w", raw, ErrScanAmbiguous)
			}
			v.Digits = trimLeadingZeros(digits)
			v.Ordinal = true
			return v, nil
		}
	}

	intPart := rest
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		intPart = rest[:dot]
		v.Frac = rest[dot+1:]
		if v.Frac == "" || !isDigits(v.Frac) || strings.ContainsRune(v.Frac, '.') {
			return NumberValue{}, fmt.Errorf("parsing number %q: %w", raw, ErrScanAmbiguous)
		}
	}
	if !isDigits(intPart) {
		return NumberValue{}, fmt.Errorf("parsing number %q: %w", raw, ErrScanAmbiguous)
	}
	v.Digits = trimLeadingZeros(intPart)
	return v, nil
}

// OrdinalSuffixFor returns the English ordinal suffix ("st", "nd", "rd"
// or "th") that a digit string takes: 1→st, 2→nd, 3→rd except for the
// teens 11/12/13, everything else →th.
func OrdinalSuffixFor(digits string) string {
	if digits == "" {
		return "th"
	}
	last := digits[len(digits)-1]
	teen := len(digits) >= 2 && digits[len(digits)-2] == '1'
	if teen {
		return "th"
	}
	switch last {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	default:
		return "th"
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
