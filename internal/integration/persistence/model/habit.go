// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
// CurrentStreak and BestStreak cache values derived from habit_logs.
type HabitModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name          string         `gorm:"type:varchar(100);not null"`
	Frequency     string         `gorm:"type:varchar(20);not null;default:'daily'"`
	Category      string         `gorm:"type:varchar(50)"`
	CurrentStreak int            `gorm:"not null;default:0"`
	BestStreak    int            `gorm:"not null;default:0"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Habit{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Frequency:     entity.HabitFrequency(m.Frequency),
		Category:      m.Category,
		CurrentStreak: m.CurrentStreak,
		BestStreak:    m.BestStreak,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	var deletedAt gorm.DeletedAt
	if habit.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *habit.DeletedAt, Valid: true}
	}

	return &HabitModel{
		ID:            habit.ID,
		UserID:        habit.UserID,
		Name:          habit.Name,
		Frequency:     string(habit.Frequency),
		Category:      habit.Category,
		CurrentStreak: habit.CurrentStreak,
		BestStreak:    habit.BestStreak,
		CreatedAt:     habit.CreatedAt,
		UpdatedAt:     habit.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
