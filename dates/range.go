// SPDX-License-Identifier: MIT
// Package: fcltrace/dates
//
// range.go - day ranges and the strict date codec.
//
// Contract:
//   - A day is the number of whole days since 1970-01-01 UTC, held in a float64
//     so unbounded ends can be ±Inf.
//   - Parse accepts exactly Layout; anything else is "unknown", never an error.

package dates

import (
	"math"
	"time"
)

// Layout is the only accepted delivery date format.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Range is a closed interval of days. Lower > Upper marks an empty
// (contradictory) range.
type Range struct {
	Lower float64
	Upper float64
}

// Unbounded returns (-Inf, +Inf).
func Unbounded() Range {
	return Range{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Point returns the degenerate range [day, day].
func Point(day float64) Range {
	return Range{Lower: day, Upper: day}
}

// IsEmpty reports whether the range contains no day.
func (r Range) IsEmpty() bool { return r.Lower > r.Upper }

// IsUnbounded reports whether both ends are infinite.
func (r Range) IsUnbounded() bool {
	return math.IsInf(r.Lower, -1) && math.IsInf(r.Upper, 1)
}

// Contains reports whether day lies within the range.
func (r Range) Contains(day float64) bool {
	return r.Lower <= day && day <= r.Upper
}

// Disjoint reports whether r and o share no day.
func (r Range) Disjoint(o Range) bool {
	return r.Upper < o.Lower || r.Lower > o.Upper
}

// String renders the range as "[2024-01-01, +inf]".
func (r Range) String() string {
	return "[" + Format(r.Lower) + ", " + Format(r.Upper) + "]"
}

// Parse converts a Layout date string to a day number.
// ok is false for empty or non-conforming input.
func Parse(s string) (day float64, ok bool) {
	if s == "" {
		return 0, false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return 0, false
	}

	return float64(t.Unix() / secondsPerDay), true
}

// Format renders a day number in Layout; infinite days render as "-inf"/"+inf".
func Format(day float64) string {
	switch {
	case math.IsInf(day, -1):
		return "-inf"
	case math.IsInf(day, 1):
		return "+inf"
	}

	return time.Unix(int64(day)*secondsPerDay, 0).UTC().Format(Layout)
}

// Explicit maps a date string to [d, d], or Unbounded if it does not parse.
func Explicit(s string) Range {
	if day, ok := Parse(s); ok {
		return Point(day)
	}

	return Unbounded()
}
