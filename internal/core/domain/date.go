package domain

// DatePolicy is the field-order policy used to disassemble an ambiguous
// date literal. The policy is a configuration input, never inferred.
type DatePolicy string

// Field-order policies.
const (
	// DatePolicyUK reads digit groups as day-month-year.
	DatePolicyUK DatePolicy = "uk"

	// DatePolicyUS reads digit groups as month-day-year.
	DatePolicyUS DatePolicy = "us"
)

// IsValid returns true if the policy is recognised.
func (p DatePolicy) IsValid() bool {
	return p == DatePolicyUK || p == DatePolicyUS
}

// String returns the string representation.
func (p DatePolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p DatePolicy) Description() string {
	switch p {
	case DatePolicyUK:
		return "UK (day/month/year)"
	case DatePolicyUS:
		return "US (month/day/year)"
	default:
		return "Unknown"
	}
}

// DateValue is the semantic value extracted from a date span.
type DateValue struct {
	// Day is the day of month, 1-31.
	Day int

	// Month is 1-12.
	Month int

	// Year is the full year (two-digit literals are expanded by the
	// century cutoff rule before a DateValue is built).
	Year int

	// Policy is the field-order policy used to disassemble the literal.
	Policy DatePolicy
}

// Validate reports whether the combination is a real calendar date,
// with leap-year-aware February handling. Illegal combinations are a
// parse failure, never a silent clamp.
func (d DateValue) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return ErrInvalidDate
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Month, d.Year) {
		return ErrInvalidDate
	}
	if d.Year < 0 {
		return ErrInvalidDate
	}
	return nil
}

// DaysInMonth returns the number of days in a month of a given year.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
