// Package todo contains todo-related use cases.
package todo

import (
	"time"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// EffectivePriority computes the deadline-escalated priority for a todo.
// A passed deadline pins the result to the maximum. Approaching deadlines
// raise the stored priority to a floor (9 within one day, 8 within three,
// 7 within seven) but never lower it. Todos without a deadline, and
// completed todos, keep their stored priority. The result is computed on
// read and never written back.
func EffectivePriority(todo *entity.Todo, now time.Time) int {
	if todo.Deadline == nil || todo.IsCompleted {
		return todo.Priority
	}

	remaining := todo.Deadline.Sub(now)
	if remaining < 0 {
		return entity.TodoPriorityMax
	}

	switch {
	case remaining <= 24*time.Hour:
		return max(todo.Priority, 9)
	case remaining <= 3*24*time.Hour:
		return max(todo.Priority, 8)
	case remaining <= 7*24*time.Hour:
		return max(todo.Priority, 7)
	default:
		return todo.Priority
	}
}
