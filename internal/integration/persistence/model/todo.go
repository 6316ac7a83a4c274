// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// TodoModel represents the todos table in the database.
// Only the user-assigned priority is stored; deadline escalation happens on
// read.
type TodoModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Date        time.Time      `gorm:"type:date;not null;index"`
	Deadline    *time.Time     `gorm:"type:timestamptz"`
	Priority    int            `gorm:"not null;default:5"`
	IsCompleted bool           `gorm:"not null;default:false"`
	CompletedAt *time.Time     `gorm:"type:timestamptz"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TodoModel.
func (TodoModel) TableName() string {
	return "todos"
}

// ToEntity converts a TodoModel to a domain Todo entity.
func (m *TodoModel) ToEntity() *entity.Todo {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Todo{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Date:        m.Date,
		Deadline:    m.Deadline,
		Priority:    m.Priority,
		IsCompleted: m.IsCompleted,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// TodoFromEntity creates a TodoModel from a domain Todo entity.
func TodoFromEntity(todo *entity.Todo) *TodoModel {
	var deletedAt gorm.DeletedAt
	if todo.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *todo.DeletedAt, Valid: true}
	}

	return &TodoModel{
		ID:          todo.ID,
		UserID:      todo.UserID,
		Title:       todo.Title,
		Date:        todo.Date,
		Deadline:    todo.Deadline,
		Priority:    todo.Priority,
		IsCompleted: todo.IsCompleted,
		CompletedAt: todo.CompletedAt,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
