// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"math"
	"time"
)

// NormalizeDay truncates a timestamp to midnight of its calendar day in the
// process-local zone. Two timestamps on the same calendar day normalize to
// identical values, so the result is usable as an equality key and as a
// unique-index key for per-day records.
//
// No timezone conversion is performed: "today" is whatever day the running
// process observes. This is a known limitation for users in other zones near
// midnight, kept intentionally rather than silently assuming UTC.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole number of calendar days from a to b after
// normalizing both. The result is negative when b precedes a. Rounding keeps
// the count correct across DST transitions, where a local day is not exactly
// 24 hours long.
func DaysBetween(a, b time.Time) int {
	da := NormalizeDay(a)
	db := NormalizeDay(b)
	return int(math.Round(db.Sub(da).Hours() / 24))
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}
