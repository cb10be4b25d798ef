// Package clock rewrites time literals into spoken form.
//
// Idiom rules, in order: a whole hour with a meridiem is "noon",
// "midnight" or "<hour> o'clock <am|pm>"; single-digit minutes take the
// "oh" idiom ("nine oh five am"); other minutes render plainly. Hours
// above twelve are reduced to 12-hour form only when a meridiem is
// present - no meridiem is ever invented. Seconds render as
// "<hour> <minute> and <seconds> seconds". Meridiem markers pass through
// as literal lower-case "am"/"pm" words.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/numwords"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?([aApP][mM])?$`)

// Ensure Rewriter implements the interface.
var _ driven.Rewriter = (*Rewriter)(nil)

// Rewriter handles time spans.
type Rewriter struct{}

// New creates a new clock rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// Kind returns the span kind this rewriter handles.
func (r *Rewriter) Kind() domain.SpanKind {
	return domain.SpanTime
}

// Rewrite renders the time span as spoken words. Literals outside the
// 24-hour range return ErrInvalidClock and are left untouched by the
// pipeline.
func (r *Rewriter) Rewrite(span domain.Span) (string, error) {
	c, err := Parse(span.Raw)
	if err != nil {
		return "", err
	}
	return render(c), nil
}

// Parse extracts a validated ClockValue from a raw time literal.
func Parse(raw string) (domain.ClockValue, error) {
	m := clockRe.FindStringSubmatch(raw)
	if m == nil {
		return domain.ClockValue{}, fmt.Errorf("parsing time %q: %w", raw, domain.ErrInvalidClock)
	}

	c := domain.ClockValue{}
	c.Hour, _ = strconv.Atoi(m[1])
	c.Minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		c.Second, _ = strconv.Atoi(m[3])
		c.HasSecond = true
	}
	switch strings.ToLower(m[4]) {
	case "am":
		c.Meridiem = domain.MeridiemAM
	case "pm":
		c.Meridiem = domain.MeridiemPM
	}

	if err := c.Validate(); err != nil {
		return domain.ClockValue{}, fmt.Errorf("parsing time %q: %w", raw, err)
	}
	return c, nil
}

func render(c domain.ClockValue) string {
	hour := numwords.RenderInt(int64(c.Hour12()), false)

	if c.HasSecond {
		words := hour + " " + minuteWords(c.Minute) + " and " +
			numwords.RenderInt(int64(c.Second), false) + " seconds"
		return withMeridiem(words, c.Meridiem)
	}

	if c.Minute == 0 {
		if !c.Meridiem.Present() {
			return hour + " o'clock"
		}
		switch {
		case c.Hour == 0 || c.Hour == 24:
			return "midnight"
		case c.Hour == 12 && c.Meridiem == domain.MeridiemPM:
			return "noon"
		case c.Hour == 12:
			return "midnight"
		}
		return withMeridiem(hour+" o'clock", c.Meridiem)
	}

	return withMeridiem(hour+" "+minuteWords(c.Minute), c.Meridiem)
}

// minuteWords applies the "oh" idiom for single-digit minutes.
func minuteWords(minute int) string {
	words := numwords.RenderInt(int64(minute), false)
	if minute >= 1 && minute <= 9 {
		return "oh " + words
	}
	return words
}

func withMeridiem(words string, m domain.Meridiem) string {
	if !m.Present() {
		return words
	}
	return words + " " + m.Word()
}
