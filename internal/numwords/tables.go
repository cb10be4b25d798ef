package numwords

// Static naming tables. Loaded once, read-only, shared process-wide.

// smallWords names 0-19.
var smallWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

// tensWords names the tens 20-90 (index n/10).
var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scaleWords names the powers of one thousand, in ascending order.
var scaleWords = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion",
}

// ordinalIrregulars maps cardinal words whose ordinal form is not covered
// by the regular "-th" / "y"-to-"ieth" rules.
var ordinalIrregulars = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}
