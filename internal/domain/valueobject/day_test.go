package valueobject

import (
	"testing"
	"time"
)

func TestNormalizeDay(t *testing.T) {
	loc := time.Local

	t.Run("same calendar day normalizes to identical values", func(t *testing.T) {
		morning := time.Date(2025, 3, 14, 0, 0, 1, 0, loc)
		night := time.Date(2025, 3, 14, 23, 59, 59, 999000000, loc)

		if !NormalizeDay(morning).Equal(NormalizeDay(night)) {
			t.Errorf("expected %v and %v to normalize equally", morning, night)
		}
	})

	t.Run("result has zeroed clock fields", func(t *testing.T) {
		got := NormalizeDay(time.Date(2025, 3, 14, 13, 45, 12, 34, loc))
		want := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("adjacent days normalize to distinct values", func(t *testing.T) {
		a := time.Date(2025, 3, 14, 23, 59, 59, 0, loc)
		b := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)
		if NormalizeDay(a).Equal(NormalizeDay(b)) {
			t.Error("expected different days to normalize differently")
		}
	})
}

func TestDaysBetween(t *testing.T) {
	loc := time.Local

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, 3, 14, 8, 0, 0, 0, loc),
			b:    time.Date(2025, 3, 14, 22, 0, 0, 0, loc),
			want: 0,
		},
		{
			name: "consecutive days",
			a:    time.Date(2025, 3, 14, 23, 0, 0, 0, loc),
			b:    time.Date(2025, 3, 15, 1, 0, 0, 0, loc),
			want: 1,
		},
		{
			name: "reversed order is negative",
			a:    time.Date(2025, 3, 15, 0, 0, 0, 0, loc),
			b:    time.Date(2025, 3, 12, 0, 0, 0, 0, loc),
			want: -3,
		},
		{
			name: "month boundary",
			a:    time.Date(2025, 2, 28, 12, 0, 0, 0, loc),
			b:    time.Date(2025, 3, 1, 12, 0, 0, 0, loc),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	loc := time.Local
	a := time.Date(2025, 3, 14, 1, 0, 0, 0, loc)
	b := time.Date(2025, 3, 14, 23, 0, 0, 0, loc)
	c := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)

	if !SameDay(a, b) {
		t.Error("expected same-day timestamps to match")
	}
	if SameDay(b, c) {
		t.Error("expected timestamps on different days not to match")
	}
}
