package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// CreateTodoInput represents the input for todo creation.
type CreateTodoInput struct {
	UserID   uuid.UUID
	Title    string
	Date     *time.Time // Optional, defaults to today
	Deadline *time.Time
	Priority *int // Optional, defaults to 5
}

// CreateTodoOutput represents the output of todo creation.
type CreateTodoOutput struct {
	Todo *entity.Todo
}

// CreateTodoUseCase handles todo creation logic.
type CreateTodoUseCase struct {
	todoRepo adapter.TodoRepository
}

// NewCreateTodoUseCase creates a new CreateTodoUseCase instance.
func NewCreateTodoUseCase(todoRepo adapter.TodoRepository) *CreateTodoUseCase {
	return &CreateTodoUseCase{
		todoRepo: todoRepo,
	}
}

// Execute performs the todo creation.
func (uc *CreateTodoUseCase) Execute(ctx context.Context, input CreateTodoInput) (*CreateTodoOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewTodoError(
			domainerror.ErrCodeMissingTodoFields,
			"todo title is required",
			nil,
		)
	}

	priority := 5
	if input.Priority != nil {
		if *input.Priority < entity.TodoPriorityMin || *input.Priority > entity.TodoPriorityMax {
			return nil, domainerror.NewTodoError(
				domainerror.ErrCodeInvalidPriority,
				"priority must be between 1 and 10",
				domainerror.ErrInvalidTodoPriority,
			)
		}
		priority = *input.Priority
	}

	date := valueobject.NormalizeDay(time.Now())
	if input.Date != nil {
		date = valueobject.NormalizeDay(*input.Date)
	}

	todo := entity.NewTodo(input.UserID, input.Title, date, input.Deadline, priority)

	if err := uc.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &CreateTodoOutput{
		Todo: todo,
	}, nil
}
