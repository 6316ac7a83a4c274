// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// TodoFilter restricts which todos are listed.
type TodoFilter struct {
	UserID      uuid.UUID
	DayStart    *time.Time // Inclusive lower bound on the todo's planned day
	DayEnd      *time.Time // Inclusive upper bound on the todo's planned day
	IsCompleted *bool
}

// TodoRepository defines the interface for todo persistence operations.
type TodoRepository interface {
	// Create creates a new todo in the database.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID retrieves a todo by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)

	// FindByFilter retrieves non-deleted todos matching the filter.
	FindByFilter(ctx context.Context, filter TodoFilter) ([]*entity.Todo, error)

	// CountByUserAndDay counts a user's todos planned for one day, split into
	// total and completed.
	CountByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (total, completed int64, err error)

	// Update updates an existing todo in the database.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
