package dto

import (
	"time"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// CreateTodoRequest represents the request body for todo creation.
type CreateTodoRequest struct {
	Title    string     `json:"title" binding:"required,min=1,max=200"`
	Date     *string    `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Deadline *time.Time `json:"deadline"`
	Priority *int       `json:"priority" binding:"omitempty,min=1,max=10"`
}

// UpdateTodoRequest represents the request body for todo updates.
type UpdateTodoRequest struct {
	Title    *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Date     *string    `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Deadline *time.Time `json:"deadline"`
	Priority *int       `json:"priority" binding:"omitempty,min=1,max=10"`
}

// CompleteTodoRequest represents the request body for toggling completion.
type CompleteTodoRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

// TodoResponse represents todo data in API responses.
type TodoResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Date              string     `json:"date"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Priority          int        `json:"priority"`
	EffectivePriority int        `json:"effective_priority"`
	IsCompleted       bool       `json:"is_completed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// TodoListResponse represents the response for listing todos.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

// ToTodoResponse converts a todo with its effective priority to a TodoResponse DTO.
func ToTodoResponse(item *entity.TodoWithEffectivePriority) TodoResponse {
	return TodoResponse{
		ID:                item.Todo.ID.String(),
		Title:             item.Todo.Title,
		Date:              item.Todo.Date.Format("2006-01-02"),
		Deadline:          item.Todo.Deadline,
		Priority:          item.Todo.Priority,
		EffectivePriority: item.EffectivePriority,
		IsCompleted:       item.Todo.IsCompleted,
		CompletedAt:       item.Todo.CompletedAt,
		CreatedAt:         item.Todo.CreatedAt,
	}
}

// ToTodoListResponse converts todos with effective priorities to a TodoListResponse DTO.
func ToTodoListResponse(items []*entity.TodoWithEffectivePriority) TodoListResponse {
	responses := make([]TodoResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToTodoResponse(item))
	}
	return TodoListResponse{Todos: responses}
}
