// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// DeleteHabitOutput represents the output of habit deletion.
type DeleteHabitOutput struct {
	Message string
}

// DeleteHabitUseCase handles habit deletion logic. The habit's logs are left
// in place; the log history remains the source of truth for past days even
// after the habit itself is gone.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit deletion.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) (*DeleteHabitOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	if habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeUnauthorizedHabit,
			"habit does not belong to user",
			domainerror.ErrUnauthorizedHabitAccess,
		)
	}

	if err := uc.habitRepo.Delete(ctx, input.HabitID); err != nil {
		return nil, fmt.Errorf("failed to delete habit: %w", err)
	}

	return &DeleteHabitOutput{
		Message: "Habit deleted successfully",
	}, nil
}
