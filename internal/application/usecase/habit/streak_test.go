// Package habit contains habit-related use cases.
package habit

import (
	"testing"
	"time"

	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// day returns today shifted by offset days, normalized.
func day(today time.Time, offset int) time.Time {
	return valueobject.NormalizeDay(today.AddDate(0, 0, offset))
}

func TestComputeStreaks(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name        string
		offsets     []int // Log days as offsets from today
		wantCurrent int
		wantBest    int
	}{
		{
			name:        "no logs",
			offsets:     nil,
			wantCurrent: 0,
			wantBest:    0,
		},
		{
			name:        "single log today",
			offsets:     []int{0},
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "single log yesterday",
			offsets:     []int{-1},
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "three consecutive days ending today",
			offsets:     []int{-2, -1, 0},
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "old run only, streak broken",
			offsets:     []int{-5, -4, -3},
			wantCurrent: 0,
			wantBest:    3,
		},
		{
			name:        "unbroken tail after a gap",
			offsets:     []int{-6, -5, -1, 0},
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "longer historical run than current tail",
			offsets:     []int{-9, -8, -7, -6, -1, 0},
			wantCurrent: 2,
			wantBest:    4,
		},
		{
			name:        "gap of exactly two days breaks the streak",
			offsets:     []int{-2},
			wantCurrent: 0,
			wantBest:    1,
		},
		{
			name:        "duplicate same-day logs do not double count",
			offsets:     []int{-1, -1, 0, 0},
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "unsorted input",
			offsets:     []int{0, -2, -1},
			wantCurrent: 3,
			wantBest:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := make([]time.Time, len(tt.offsets))
			for i, off := range tt.offsets {
				days[i] = day(today, off)
			}

			got := ComputeStreaks(days, today)
			if got.Current != tt.wantCurrent {
				t.Errorf("current streak = %d, want %d", got.Current, tt.wantCurrent)
			}
			if got.Best != tt.wantBest {
				t.Errorf("best streak = %d, want %d", got.Best, tt.wantBest)
			}
		})
	}
}

func TestComputeStreaks_BestNeverBelowCurrent(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	histories := [][]int{
		{0},
		{-1, 0},
		{-3, -2, -1, 0},
		{-10, -9, -2, -1, 0},
		{-7, -6, -5, -1, 0},
	}

	for _, offsets := range histories {
		days := make([]time.Time, len(offsets))
		for i, off := range offsets {
			days[i] = day(today, off)
		}

		got := ComputeStreaks(days, today)
		if got.Best < got.Current {
			t.Errorf("history %v: best streak %d < current streak %d", offsets, got.Best, got.Current)
		}
	}
}

func TestComputeStreaks_MonotonicBest(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	days := []time.Time{day(today, -5), day(today, -4)}
	before := ComputeStreaks(days, today).Best

	days = append(days, day(today, 0))
	after := ComputeStreaks(days, today).Best

	if after < before {
		t.Errorf("best streak decreased after appending a log: %d -> %d", before, after)
	}
}

func TestComputeStreaks_Idempotent(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	once := ComputeStreaks([]time.Time{day(today, -1), day(today, 0)}, today)
	twice := ComputeStreaks([]time.Time{day(today, -1), day(today, 0), day(today, 0)}, today)

	if once != twice {
		t.Errorf("re-logging the same day changed the result: %+v vs %+v", once, twice)
	}
}

func TestComputeStreaks_FutureLogFailsClosed(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	got := ComputeStreaks([]time.Time{day(today, 2)}, today)
	if got.Current != 0 {
		t.Errorf("expected current streak 0 for a future-only log, got %d", got.Current)
	}
}
