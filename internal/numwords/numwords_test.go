package numwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

func TestRenderInt_Cardinals(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "zero", n: 0, want: "zero"},
		{name: "unit", n: 7, want: "seven"},
		{name: "teen", n: 13, want: "thirteen"},
		{name: "round tens", n: 40, want: "forty"},
		{name: "compound tens", n: 21, want: "twenty one"},
		{name: "exact hundred never a-hundred", n: 100, want: "one hundred"},
		{name: "hundred with and", n: 921, want: "nine hundred and twenty one"},
		{name: "round thousand", n: 1000, want: "one thousand"},
		{name: "thousand and small tail", n: 2010, want: "two thousand and ten"},
		{name: "full year", n: 1996, want: "one thousand nine hundred and ninety six"},
		{name: "large tail no joining and", n: 921365, want: "nine hundred and twenty one thousand three hundred and sixty five"},
		{name: "million", n: 1000000, want: "one million"},
		{name: "million and thousand", n: 1002000, want: "one million and two thousand"},
		{name: "billion", n: 3000000021, want: "three billion and twenty one"},
		{name: "negative", n: -5, want: "minus five"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderInt(tc.n, false))
		})
	}
}

func TestRenderInt_Ordinals(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "first", n: 1, want: "first"},
		{name: "second", n: 2, want: "second"},
		{name: "third", n: 3, want: "third"},
		{name: "fifth", n: 5, want: "fifth"},
		{name: "eighth", n: 8, want: "eighth"},
		{name: "ninth", n: 9, want: "ninth"},
		{name: "twelfth", n: 12, want: "twelfth"},
		{name: "twentieth", n: 20, want: "twentieth"},
		{name: "only terminal word altered", n: 21, want: "twenty first"},
		{name: "hundredth", n: 100, want: "one hundredth"},
		{name: "thousandth", n: 1000, want: "one thousandth"},
		{name: "long ordinal", n: 415, want: "four hundred and fifteenth"},
		{name: "zeroth", n: 0, want: "zeroth"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderInt(tc.n, true))
		})
	}
}

func TestRender_Decimals(t *testing.T) {
	tests := []struct {
		name string
		v    domain.NumberValue
		want string
	}{
		{
			name: "leading zero preserved",
			v:    domain.NumberValue{Digits: "3", Frac: "05"},
			want: "three point zero five",
		},
		{
			name: "digit by digit",
			v:    domain.NumberValue{Digits: "67", Frac: "98"},
			want: "sixty seven point nine eight",
		},
		{
			name: "long fraction",
			v:    domain.NumberValue{Digits: "12", Frac: "1356"},
			want: "twelve point one three five six",
		},
		{
			name: "negative decimal",
			v:    domain.NumberValue{Negative: true, Digits: "0", Frac: "5"},
			want: "minus zero point five",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.v))
		})
	}
}

func TestRender_BeyondMagnitudeCap(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
	}{
		{
			name:   "power of ten",
			digits: "1" + strings.Repeat("0", 21),
			want:   "one times ten to the twenty one",
		},
		{
			name:   "mantissa digits spoken individually",
			digits: "314" + strings.Repeat("0", 20),
			want:   "three point one four times ten to the twenty two",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(domain.NumberValue{Digits: tc.digits}))
		})
	}
}

func TestRender_LargestNamedScale(t *testing.T) {
	// 21 digits is still within named scales.
	digits := "9" + strings.Repeat("0", 20)
	got := Render(domain.NumberValue{Digits: digits})
	assert.Equal(t, "nine hundred quintillion", got)
}

// wordsToInt is an independent reference mapping from spoken words back to
// a value, used to check the round-trip law.
func wordsToInt(t *testing.T, words string) uint64 {
	t.Helper()

	values := map[string]uint64{}
	for i, w := range smallWords {
		values[w] = uint64(i)
	}
	for i := 2; i < len(tensWords); i++ {
		values[tensWords[i]] = uint64(i * 10)
	}
	scales := map[string]uint64{
		"thousand":    1e3,
		"million":     1e6,
		"billion":     1e9,
		"trillion":    1e12,
		"quadrillion": 1e15,
		"quintillion": 1e18,
	}

	var total, current uint64
	for _, w := range strings.Fields(words) {
		switch {
		case w == "and":
			continue
		case w == "hundred":
			current *= 100
		case scales[w] != 0:
			total += current * scales[w]
			current = 0
		default:
			v, ok := values[w]
			require.True(t, ok, "unknown word %q", w)
			current += v
		}
	}
	return total + current
}

func TestRenderInt_RoundTrip(t *testing.T) {
	cases := []int64{}
	for n := int64(0); n <= 1200; n++ {
		cases = append(cases, n)
	}
	for p := int64(10); p <= 1e18 && p > 0; p *= 10 {
		cases = append(cases, p, p-1, p+1, p+21)
	}
	cases = append(cases, 123456789, 999999999999, 1002000, 80000080008)

	for _, n := range cases {
		got := wordsToInt(t, RenderInt(n, false))
		require.Equal(t, uint64(n), got, "round trip failed for %d (%q)", n, RenderInt(n, false))
	}
}

func TestOrdinalize(t *testing.T) {
	assert.Equal(t, "fortieth", Ordinalize("forty"))
	assert.Equal(t, "sixty sixth", Ordinalize("sixty six"))
	assert.Equal(t, "one millionth", Ordinalize("one million"))
}

func BenchmarkRenderInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = RenderInt(987654321, false)
	}
}
