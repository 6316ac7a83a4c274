// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit update.
type UpdateHabitInput struct {
	UserID    uuid.UUID
	HabitID   uuid.UUID
	Name      *string
	Frequency *entity.HabitFrequency
	Category  *string
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
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

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeMissingHabitFields,
				"habit name must not be empty",
				nil,
			)
		}
		habit.Name = *input.Name
	}
	if input.Frequency != nil {
		if !isValidFrequency(*input.Frequency) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitFrequency,
				"frequency must be 'daily', 'weekly', or 'custom'",
				domainerror.ErrInvalidHabitFrequency,
			)
		}
		habit.Frequency = *input.Frequency
	}
	if input.Category != nil {
		habit.Category = *input.Category
	}

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{
		Habit: habit,
	}, nil
}
