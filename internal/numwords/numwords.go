// Package numwords renders numbers as their fully spelled-out spoken form.
//
// Rendering is a pure function over static naming tables: integers are
// grouped by powers of one thousand and each three-digit group takes the
// standard English construction ("nine hundred and twenty one"). The final
// two non-zero groups are joined with "and" when the last group is below
// one hundred, following British convention ("two thousand and ten").
//
// Magnitudes are arbitrary precision. Named scales stop at quintillion, so
// any integer with at most MagnitudeCapDigits digits renders with scale
// names; beyond the cap the renderer switches to the deterministic
// scientific form "D point DDD times ten to the N". Rendering is total and
// never fails.
package numwords

import (
	"strconv"
	"strings"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

// MagnitudeCapDigits is the largest digit count renderable with named
// scale words (quintillion covers 10^18 through 10^20).
const MagnitudeCapDigits = 21

// Render returns the spoken-word expansion of a number value.
// Fractional digit sequences are rendered digit by digit, never as a
// fractional magnitude. The ordinal flag applies only to whole numbers.
func Render(v domain.NumberValue) string {
	var b strings.Builder
	if v.Negative {
		b.WriteString("minus ")
	}

	if len(v.Digits) > MagnitudeCapDigits {
		b.WriteString(scientific(v.Digits))
	} else {
		words := cardinal(v.Digits)
		if v.Ordinal && v.Frac == "" {
			words = Ordinalize(words)
		}
		b.WriteString(words)
	}

	if v.Frac != "" {
		b.WriteString(" point")
		for i := 0; i < len(v.Frac); i++ {
			b.WriteByte(' ')
			b.WriteString(smallWords[v.Frac[i]-'0'])
		}
	}

	return b.String()
}

// RenderInt renders an int64 as a cardinal or ordinal word sequence.
func RenderInt(n int64, ordinal bool) string {
	v := domain.NumberFromInt(n)
	v.Ordinal = ordinal
	return Render(v)
}

// Ordinalize converts the terminal word of a cardinal rendering to its
// ordinal form. Words before the terminal word are never altered, so
// "twenty one" becomes "twenty first".
func Ordinalize(words string) string {
	idx := strings.LastIndexByte(words, ' ')
	last := words[idx+1:]

	switch {
	case ordinalIrregulars[last] != "":
		last = ordinalIrregulars[last]
	case strings.HasSuffix(last, "y"):
		last = last[:len(last)-1] + "ieth"
	default:
		last += "th"
	}

	if idx < 0 {
		return last
	}
	return words[:idx+1] + last
}

// cardinal renders a non-negative decimal digit string (no leading zeros)
// of at most MagnitudeCapDigits digits.
func cardinal(digits string) string {
	if digits == "" || digits == "0" {
		return "zero"
	}

	// Split into three-digit groups from the right.
	groupCount := (len(digits) + 2) / 3
	values := make([]int, groupCount)
	rest := digits
	for i := groupCount - 1; i >= 0; i-- {
		cut := len(rest) - 3
		if cut < 0 {
			cut = 0
		}
		values[i], _ = strconv.Atoi(rest[cut:])
		rest = rest[:cut]
	}

	var parts []string
	lastValue := 0
	for i, value := range values {
		if value == 0 {
			continue
		}
		scale := groupCount - 1 - i
		words := groupWords(value)
		if scale > 0 {
			words += " " + scaleWords[scale]
		}
		parts = append(parts, words)
		lastValue = value
	}

	if len(parts) == 1 {
		return parts[0]
	}

	// British convention: "and" before the final group when it is below
	// one hundred ("two thousand and ten").
	head := strings.Join(parts[:len(parts)-1], " ")
	if lastValue < 100 {
		return head + " and " + parts[len(parts)-1]
	}
	return head + " " + parts[len(parts)-1]
}

// groupWords renders 1-999 ("nine hundred and twenty one"). Compound
// tens-units are a plain word pair with no "and" between them.
func groupWords(n int) string {
	switch {
	case n < 20:
		return smallWords[n]
	case n < 100:
		if n%10 == 0 {
			return tensWords[n/10]
		}
		return tensWords[n/10] + " " + smallWords[n%10]
	default:
		words := smallWords[n/100] + " hundred"
		if n%100 != 0 {
			words += " and " + groupWords(n%100)
		}
		return words
	}
}

// scientific renders an integer beyond the magnitude cap as
// "D point DDD times ten to the N". Trailing zeros of the mantissa are
// dropped; the exponent is always below the cap and renders normally.
func scientific(digits string) string {
	exponent := len(digits) - 1
	mantissa := strings.TrimRight(digits[1:], "0")

	var b strings.Builder
	b.WriteString(smallWords[digits[0]-'0'])
	if mantissa != "" {
		b.WriteString(" point")
		for i := 0; i < len(mantissa); i++ {
			b.WriteByte(' ')
			b.WriteString(smallWords[mantissa[i]-'0'])
		}
	}
	b.WriteString(" times ten to the ")
	b.WriteString(cardinal(strconv.Itoa(exponent)))
	return b.String()
}
