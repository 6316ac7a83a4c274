// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUserID retrieves all habits for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// Update updates an existing habit in the database.
	Update(ctx context.Context, habit *entity.Habit) error

	// UpdateStreaks overwrites the cached streak fields for a habit.
	UpdateStreaks(ctx context.Context, id uuid.UUID, currentStreak, bestStreak int) error

	// Delete removes a habit from the database (soft delete). The habit's
	// logs are intentionally left in place.
	Delete(ctx context.Context, id uuid.UUID) error
}

// HabitLogRepository defines the interface for habit log persistence operations.
type HabitLogRepository interface {
	// Upsert writes the status for one (habit, day) pair, overwriting any
	// existing log for that day. The per-day uniqueness constraint resolves
	// concurrent double-submission to a single row.
	Upsert(ctx context.Context, log *entity.HabitLog) error

	// FindDoneDays retrieves the (deduplicated) days with a "done" log for
	// one habit, in ascending order.
	FindDoneDays(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)

	// FindByHabitAndRange retrieves logs for one habit within [start, end].
	FindByHabitAndRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*entity.HabitLog, error)

	// FindByUserAndDay retrieves all of a user's logs for one day.
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.HabitLog, error)
}
