package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// UpdateTodoInput represents the input for updating a todo.
// Nil fields are left unchanged.
type UpdateTodoInput struct {
	TodoID   uuid.UUID
	UserID   uuid.UUID
	Title    *string
	Date     *time.Time
	Deadline *time.Time
	Priority *int
}

// UpdateTodoOutput represents the output of updating a todo.
type UpdateTodoOutput struct {
	Todo *entity.Todo
}

// UpdateTodoUseCase handles todo update logic.
type UpdateTodoUseCase struct {
	todoRepo adapter.TodoRepository
}

// NewUpdateTodoUseCase creates a new UpdateTodoUseCase instance.
func NewUpdateTodoUseCase(todoRepo adapter.TodoRepository) *UpdateTodoUseCase {
	return &UpdateTodoUseCase{
		todoRepo: todoRepo,
	}
}

// Execute performs the todo update.
func (uc *UpdateTodoUseCase) Execute(ctx context.Context, input UpdateTodoInput) (*UpdateTodoOutput, error) {
	todo, err := uc.findOwnedTodo(ctx, input.TodoID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewTodoError(
				domainerror.ErrCodeMissingTodoFields,
				"todo title is required",
				nil,
			)
		}
		todo.Title = *input.Title
	}

	if input.Date != nil {
		todo.Date = valueobject.NormalizeDay(*input.Date)
	}

	if input.Deadline != nil {
		todo.Deadline = input.Deadline
	}

	if input.Priority != nil {
		if *input.Priority < entity.TodoPriorityMin || *input.Priority > entity.TodoPriorityMax {
			return nil, domainerror.NewTodoError(
				domainerror.ErrCodeInvalidPriority,
				"priority must be between 1 and 10",
				domainerror.ErrInvalidTodoPriority,
			)
		}
		todo.Priority = *input.Priority
	}

	todo.UpdatedAt = time.Now().UTC()

	if err := uc.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &UpdateTodoOutput{
		Todo: todo,
	}, nil
}

// findOwnedTodo loads a todo and verifies it belongs to the caller.
func (uc *UpdateTodoUseCase) findOwnedTodo(ctx context.Context, todoID, userID uuid.UUID) (*entity.Todo, error) {
	todo, err := uc.todoRepo.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTodoNotFound) {
			return nil, domainerror.NewTodoError(
				domainerror.ErrCodeTodoNotFound,
				"todo not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	if todo.UserID != userID {
		return nil, domainerror.NewTodoError(
			domainerror.ErrCodeUnauthorizedTodo,
			"todo does not belong to the user",
			domainerror.ErrUnauthorizedTodoAccess,
		)
	}

	return todo, nil
}
