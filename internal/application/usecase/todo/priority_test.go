package todo

import (
	"testing"
	"time"

	"github.com/kairos-app/backend/internal/domain/entity"
)

func TestEffectivePriority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	deadline := func(d time.Duration) *time.Time {
		dl := now.Add(d)
		return &dl
	}

	tests := []struct {
		name     string
		priority int
		deadline *time.Time
		done     bool
		want     int
	}{
		{
			name:     "no deadline keeps stored priority",
			priority: 4,
			deadline: nil,
			want:     4,
		},
		{
			name:     "passed deadline pins to max",
			priority: 2,
			deadline: deadline(-time.Hour),
			want:     10,
		},
		{
			name:     "within one day floors at 9",
			priority: 3,
			deadline: deadline(12 * time.Hour),
			want:     9,
		},
		{
			name:     "within three days floors at 8",
			priority: 3,
			deadline: deadline(2 * 24 * time.Hour),
			want:     8,
		},
		{
			name:     "within seven days floors at 7",
			priority: 3,
			deadline: deadline(5 * 24 * time.Hour),
			want:     7,
		},
		{
			name:     "beyond seven days keeps stored priority",
			priority: 3,
			deadline: deadline(10 * 24 * time.Hour),
			want:     3,
		},
		{
			name:     "stored priority above the floor wins",
			priority: 10,
			deadline: deadline(5 * 24 * time.Hour),
			want:     10,
		},
		{
			name:     "completed todo ignores deadline",
			priority: 3,
			deadline: deadline(-time.Hour),
			done:     true,
			want:     3,
		},
		{
			name:     "exactly one day out floors at 9",
			priority: 1,
			deadline: deadline(24 * time.Hour),
			want:     9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := &entity.Todo{
				Priority:    tt.priority,
				Deadline:    tt.deadline,
				IsCompleted: tt.done,
			}

			if got := EffectivePriority(todo, now); got != tt.want {
				t.Errorf("EffectivePriority() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectivePriorityNeverLowersStored(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	offsets := []time.Duration{
		-48 * time.Hour,
		-time.Minute,
		time.Hour,
		24 * time.Hour,
		2 * 24 * time.Hour,
		6 * 24 * time.Hour,
		30 * 24 * time.Hour,
	}

	for p := entity.TodoPriorityMin; p <= entity.TodoPriorityMax; p++ {
		for _, off := range offsets {
			dl := now.Add(off)
			todo := &entity.Todo{Priority: p, Deadline: &dl}

			if got := EffectivePriority(todo, now); got < p {
				t.Errorf("EffectivePriority(priority=%d, offset=%s) = %d, lowered stored priority", p, off, got)
			}
		}
	}
}
