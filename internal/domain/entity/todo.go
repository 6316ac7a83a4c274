// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TodoPriorityMin and TodoPriorityMax bound the user-assigned priority scale.
	TodoPriorityMin = 1
	TodoPriorityMax = 10
)

// Todo represents a task in the Kairos system.
type Todo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Date        time.Time // Day the task is planned for
	Deadline    *time.Time
	Priority    int // User-assigned, TodoPriorityMin..TodoPriorityMax
	IsCompleted bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTodo creates a new Todo entity.
func NewTodo(userID uuid.UUID, title string, date time.Time, deadline *time.Time, priority int) *Todo {
	now := time.Now().UTC()

	return &Todo{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Date:      date,
		Deadline:  deadline,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TodoWithEffectivePriority pairs a todo with its deadline-escalated
// priority. The effective priority is sort-only and never persisted.
type TodoWithEffectivePriority struct {
	Todo              *Todo
	EffectivePriority int
}
