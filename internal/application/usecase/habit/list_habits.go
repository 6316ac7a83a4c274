// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID    uuid.UUID
	WeekStart *time.Time // Optional log window; both bounds required to apply
	WeekEnd   *time.Time
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.HabitWithLogs
}

// ListHabitsUseCase handles listing habits merged with today's status and a
// window of their logs.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
	logRepo   adapter.HabitLogRepository
	now       func() time.Time
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository, logRepo adapter.HabitLogRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
		logRepo:   logRepo,
		now:       time.Now,
	}
}

// Execute performs the habit listing.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	today := valueobject.NormalizeDay(uc.now())

	result := make([]*entity.HabitWithLogs, 0, len(habits))
	for _, h := range habits {
		withLogs := &entity.HabitWithLogs{
			Habit:       h,
			TodayStatus: entity.HabitLogStatusNone,
		}

		start, end := today, today
		if input.WeekStart != nil && input.WeekEnd != nil {
			start = valueobject.NormalizeDay(*input.WeekStart)
			end = valueobject.NormalizeDay(*input.WeekEnd)
		}

		logs, err := uc.logRepo.FindByHabitAndRange(ctx, h.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load logs for habit %s: %w", h.ID, err)
		}
		withLogs.Logs = logs

		withLogs.TodayStatus, err = uc.todayStatus(ctx, h.ID, logs, today)
		if err != nil {
			return nil, err
		}

		result = append(result, withLogs)
	}

	return &ListHabitsOutput{
		Habits: result,
	}, nil
}

// todayStatus resolves today's log status, reusing the window logs when they
// cover today and falling back to a point query when they do not.
func (uc *ListHabitsUseCase) todayStatus(ctx context.Context, habitID uuid.UUID, logs []*entity.HabitLog, today time.Time) (entity.HabitLogStatus, error) {
	for _, l := range logs {
		if valueobject.SameDay(l.Day, today) {
			return l.Status, nil
		}
	}

	todayLogs, err := uc.logRepo.FindByHabitAndRange(ctx, habitID, today, today)
	if err != nil {
		return entity.HabitLogStatusNone, fmt.Errorf("failed to load today's log for habit %s: %w", habitID, err)
	}
	for _, l := range todayLogs {
		return l.Status, nil
	}
	return entity.HabitLogStatusNone, nil
}
