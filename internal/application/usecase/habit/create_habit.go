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

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID    uuid.UUID
	Name      string
	Frequency *entity.HabitFrequency // Optional, defaults to daily
	Category  string
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"habit name is required",
			nil,
		)
	}

	frequency := entity.HabitFrequencyDaily
	if input.Frequency != nil {
		if !isValidFrequency(*input.Frequency) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitFrequency,
				"frequency must be 'daily', 'weekly', or 'custom'",
				domainerror.ErrInvalidHabitFrequency,
			)
		}
		frequency = *input.Frequency
	}

	habit := entity.NewHabit(input.UserID, input.Name, frequency, input.Category)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}

// isValidFrequency validates the habit frequency.
func isValidFrequency(frequency entity.HabitFrequency) bool {
	return frequency == entity.HabitFrequencyDaily ||
		frequency == entity.HabitFrequencyWeekly ||
		frequency == entity.HabitFrequencyCustom
}
