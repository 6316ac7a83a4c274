package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// DeleteTodoInput represents the input for deleting a todo.
type DeleteTodoInput struct {
	TodoID uuid.UUID
	UserID uuid.UUID
}

// DeleteTodoUseCase handles todo deletion logic.
type DeleteTodoUseCase struct {
	todoRepo adapter.TodoRepository
}

// NewDeleteTodoUseCase creates a new DeleteTodoUseCase instance.
func NewDeleteTodoUseCase(todoRepo adapter.TodoRepository) *DeleteTodoUseCase {
	return &DeleteTodoUseCase{
		todoRepo: todoRepo,
	}
}

// Execute performs the todo deletion.
func (uc *DeleteTodoUseCase) Execute(ctx context.Context, input DeleteTodoInput) error {
	todo, err := uc.todoRepo.FindByID(ctx, input.TodoID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTodoNotFound) {
			return domainerror.NewTodoError(
				domainerror.ErrCodeTodoNotFound,
				"todo not found",
				err,
			)
		}
		return fmt.Errorf("failed to find todo: %w", err)
	}

	if todo.UserID != input.UserID {
		return domainerror.NewTodoError(
			domainerror.ErrCodeUnauthorizedTodo,
			"todo does not belong to the user",
			domainerror.ErrUnauthorizedTodoAccess,
		)
	}

	if err := uc.todoRepo.Delete(ctx, input.TodoID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
