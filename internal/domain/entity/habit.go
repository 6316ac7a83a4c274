// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency represents how often a habit is expected to be performed.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "daily"
	HabitFrequencyWeekly HabitFrequency = "weekly"
	HabitFrequencyCustom HabitFrequency = "custom"
)

// HabitLogStatus represents the completion status of a habit for one day.
type HabitLogStatus string

const (
	HabitLogStatusDone HabitLogStatus = "done"
	HabitLogStatusNone HabitLogStatus = "none"
)

// Habit represents a tracked habit in the Kairos system.
// CurrentStreak and BestStreak are cached values derived from the habit's
// log history; the logs are the source of truth and both fields are
// recomputed on every log toggle.
type Habit struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Frequency     HabitFrequency
	Category      string
	CurrentStreak int
	BestStreak    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewHabit creates a new Habit entity.
func NewHabit(userID uuid.UUID, name string, frequency HabitFrequency, category string) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Frequency: frequency,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HabitLog represents a single per-day completion record for a habit.
// At most one log exists per (habit, day) pair; re-logging the same day
// overwrites the status rather than creating a second row. Logs outlive
// their parent habit: deleting a habit does not delete its logs.
type HabitLog struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	UserID    uuid.UUID
	Day       time.Time // Normalized to midnight, process-local zone
	Status    HabitLogStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewHabitLog creates a new HabitLog entity for the given day.
func NewHabitLog(habitID, userID uuid.UUID, day time.Time, status HabitLogStatus) *HabitLog {
	now := time.Now().UTC()

	return &HabitLog{
		ID:        uuid.New(),
		HabitID:   habitID,
		UserID:    userID,
		Day:       day,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HabitWithLogs represents a habit together with a window of its logs.
type HabitWithLogs struct {
	Habit       *Habit
	TodayStatus HabitLogStatus
	Logs        []*HabitLog
}
