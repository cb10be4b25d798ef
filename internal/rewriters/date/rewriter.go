// Package date rewrites calendar date literals into spoken form:
// "<day ordinal> of <month name> <year>", with the year spoken in the
// grouped-thousands idiom ("two thousand and ten", not "twenty ten").
//
// Field order for ambiguous literals is a configuration input: UK reads
// day/month/year, US reads month/day/year. A four-digit group, or a
// leading group above thirty one, is always the year regardless of
// policy; a two-digit trailing year expands by the century cutoff rule.
// Calendar-illegal combinations (including February 29 outside leap
// years) are a parse failure, never a silent clamp.
package date

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/numwords"
)

// twoDigitYearCutoff resolves two-digit years: below the cutoff is the
// 2000s, at or above is the 1900s ("14" -> 2014, "75" -> 1975).
const twoDigitYearCutoff = 50

// monthNames is the static 12-entry month name table (index month-1).
var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

// Ensure Rewriter implements the interface.
var _ driven.Rewriter = (*Rewriter)(nil)

// Rewriter handles date spans under a configured field-order policy.
type Rewriter struct {
	policy domain.DatePolicy
}

// Option configures the date rewriter.
type Option func(*Rewriter)

// WithPolicy sets the field-order policy.
func WithPolicy(policy domain.DatePolicy) Option {
	return func(r *Rewriter) {
		if policy.IsValid() {
			r.policy = policy
		}
	}
}

// New creates a new date rewriter. The default policy is UK.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{policy: domain.DatePolicyUK}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the configured field-order policy.
func (r *Rewriter) Policy() domain.DatePolicy {
	return r.policy
}

// Kind returns the span kind this rewriter handles.
func (r *Rewriter) Kind() domain.SpanKind {
	return domain.SpanDate
}

// Rewrite renders the date span as spoken words. Calendar-illegal
// literals return ErrInvalidDate and are left untouched by the pipeline.
func (r *Rewriter) Rewrite(span domain.Span) (string, error) {
	v, err := Parse(span.Raw, r.policy)
	if err != nil {
		return "", err
	}
	return render(v), nil
}

// Parse disassembles a raw date literal (three digit groups separated by
// '/' or '-') under the given policy and validates calendar legality.
func Parse(raw string, policy domain.DatePolicy) (domain.DateValue, error) {
	groups := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(groups) != 3 {
		return domain.DateValue{}, fmt.Errorf("parsing date %q: %w", raw, domain.ErrInvalidDate)
	}

	values := make([]int, 3)
	for i, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil || len(g) > 4 {
			return domain.DateValue{}, fmt.Errorf("parsing date %q: %w", raw, domain.ErrInvalidDate)
		}
		values[i] = n
	}

	v := resolve(values, groups, policy)
	if err := v.Validate(); err != nil {
		return domain.DateValue{}, fmt.Errorf("parsing date %q: %w", raw, err)
	}
	return v, nil
}

// resolve assigns day, month and year to the digit groups.
func resolve(values []int, groups []string, policy domain.DatePolicy) domain.DateValue {
	v := domain.DateValue{Policy: policy}

	switch {
	case len(groups[0]) == 4 || values[0] > 31:
		// Leading year: year-month-day, regardless of policy.
		v.Year = expandYear(values[0], len(groups[0]))
		v.Month = values[1]
		v.Day = values[2]
	case len(groups[1]) == 4:
		// Year in the middle: remaining groups keep the policy order.
		v.Year = values[1]
		v.Day, v.Month = byPolicy(values[0], values[2], policy)
	default:
		v.Year = expandYear(values[2], len(groups[2]))
		v.Day, v.Month = byPolicy(values[0], values[1], policy)
	}

	return v
}

func byPolicy(first, second int, policy domain.DatePolicy) (day, month int) {
	if policy == domain.DatePolicyUS {
		return second, first
	}
	return first, second
}

// expandYear applies the century cutoff to two-digit years; other widths
// are taken literally.
func expandYear(year, width int) int {
	if width != 2 {
		return year
	}
	if year < twoDigitYearCutoff {
		return 2000 + year
	}
	return 1900 + year
}

func render(v domain.DateValue) string {
	return numwords.RenderInt(int64(v.Day), true) +
		" of " + monthNames[v.Month-1] +
		" " + numwords.RenderInt(int64(v.Year), false)
}
