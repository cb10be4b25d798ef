package domain

// Meridiem is the am/pm marker on a clock time.
type Meridiem string

// Meridiem markers.
const (
	MeridiemNone Meridiem = ""
	MeridiemAM   Meridiem = "am"
	MeridiemPM   Meridiem = "pm"
)

// Present returns true when a marker was attached to the literal.
func (m Meridiem) Present() bool {
	return m == MeridiemAM || m == MeridiemPM
}

// Word returns the spoken form of the marker. Markers pass through as
// literal lower-case "am"/"pm" words for downstream consistency.
func (m Meridiem) Word() string {
	return string(m)
}

// ClockValue is the semantic value extracted from a time span.
type ClockValue struct {
	// Hour is the literal hour field, 0-24.
	Hour int

	// Minute is 0-59.
	Minute int

	// Second is 0-59; meaningful only when HasSecond is set.
	Second int

	// HasSecond marks an hh:mm:ss literal.
	HasSecond bool

	// Meridiem is the attached marker, if any.
	Meridiem Meridiem
}

// Validate reports whether the fields form a legal 24-hour clock reading.
// Hour 24 is accepted only as 24:00 (midnight).
func (c ClockValue) Validate() error {
	if c.Hour < 0 || c.Hour > 24 {
		return ErrInvalidClock
	}
	if c.Hour == 24 && (c.Minute != 0 || (c.HasSecond && c.Second != 0)) {
		return ErrInvalidClock
	}
	if c.Minute < 0 || c.Minute > 59 {
		return ErrInvalidClock
	}
	if c.HasSecond && (c.Second < 0 || c.Second > 59) {
		return ErrInvalidClock
	}
	return nil
}

// Hour12 reduces the hour to 12-hour form when a meridiem is present.
// Without a meridiem the raw 24-hour value is kept: no meridiem is ever
// invented for the caller.
func (c ClockValue) Hour12() int {
	if !c.Meridiem.Present() {
		return c.Hour
	}
	switch {
	case c.Hour == 0 || c.Hour == 24:
		return 12
	case c.Hour > 12:
		return c.Hour - 12
	default:
		return c.Hour
	}
}
