// Package habit contains habit-related use cases.
package habit

import (
	"sort"
	"time"

	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// Streaks holds the derived consecutive-day counters for one habit.
type Streaks struct {
	Current int
	Best    int
}

// ComputeStreaks derives the current and best consecutive-day streaks from
// the full set of "done" log days for one habit. today is passed explicitly
// so the computation stays pure and testable.
//
// The current streak is anchored at the most recent log day and is zero when
// that day is more than one day before today. The best streak is the longest
// run of consecutive days anywhere in the history. Duplicate same-day logs
// neither extend nor break a run.
func ComputeStreaks(doneDays []time.Time, today time.Time) Streaks {
	if len(doneDays) == 0 {
		return Streaks{}
	}

	days := make([]time.Time, len(doneDays))
	for i, d := range doneDays {
		days[i] = valueobject.NormalizeDay(d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	// Dedupe in place; the repository already deduplicates, but callers feed
	// this function raw lists too and a duplicate must never double count.
	uniq := days[:1]
	for _, d := range days[1:] {
		if !d.Equal(uniq[len(uniq)-1]) {
			uniq = append(uniq, d)
		}
	}

	return Streaks{
		Current: currentStreak(uniq, today),
		Best:    bestStreak(uniq),
	}
}

// currentStreak walks backward from the most recent log day. days must be
// ascending and deduplicated.
func currentStreak(days []time.Time, today time.Time) int {
	mostRecent := days[len(days)-1]

	if gap := valueobject.DaysBetween(mostRecent, today); gap > 1 || gap < 0 {
		return 0
	}

	streak := 1
	anchor := mostRecent
	for i := len(days) - 2; i >= 0; i-- {
		if valueobject.DaysBetween(days[i], anchor) != 1 {
			break
		}
		streak++
		anchor = days[i]
	}
	return streak
}

// bestStreak walks forward accumulating run lengths. days must be ascending
// and deduplicated.
func bestStreak(days []time.Time) int {
	best := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if valueobject.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
