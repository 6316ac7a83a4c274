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
)

// CompleteTodoInput represents the input for toggling a todo's completion.
type CompleteTodoInput struct {
	TodoID      uuid.UUID
	UserID      uuid.UUID
	IsCompleted bool
}

// CompleteTodoOutput represents the output of toggling a todo's completion.
type CompleteTodoOutput struct {
	Todo *entity.Todo
}

// CompleteTodoUseCase handles todo completion logic.
type CompleteTodoUseCase struct {
	todoRepo adapter.TodoRepository
}

// NewCompleteTodoUseCase creates a new CompleteTodoUseCase instance.
func NewCompleteTodoUseCase(todoRepo adapter.TodoRepository) *CompleteTodoUseCase {
	return &CompleteTodoUseCase{
		todoRepo: todoRepo,
	}
}

// Execute marks a todo as completed or reopens it. Completing records the
// completion time; reopening clears it.
func (uc *CompleteTodoUseCase) Execute(ctx context.Context, input CompleteTodoInput) (*CompleteTodoOutput, error) {
	todo, err := uc.todoRepo.FindByID(ctx, input.TodoID)
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

	if todo.UserID != input.UserID {
		return nil, domainerror.NewTodoError(
			domainerror.ErrCodeUnauthorizedTodo,
			"todo does not belong to the user",
			domainerror.ErrUnauthorizedTodoAccess,
		)
	}

	now := time.Now().UTC()
	todo.IsCompleted = input.IsCompleted
	if input.IsCompleted {
		todo.CompletedAt = &now
	} else {
		todo.CompletedAt = nil
	}
	todo.UpdatedAt = now

	if err := uc.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &CompleteTodoOutput{
		Todo: todo,
	}, nil
}
