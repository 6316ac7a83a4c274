// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// HabitLogModel represents the habit_logs table in the database.
// The composite unique index makes concurrent double-logging of the same day
// collapse into one row instead of duplicating. Logs are never soft-deleted
// and intentionally survive their parent habit.
type HabitLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_logs_habit_day"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Day       time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_logs_habit_day"`
	Status    string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitLogModel.
func (HabitLogModel) TableName() string {
	return "habit_logs"
}

// ToEntity converts a HabitLogModel to a domain HabitLog entity.
func (m *HabitLogModel) ToEntity() *entity.HabitLog {
	return &entity.HabitLog{
		ID:        m.ID,
		HabitID:   m.HabitID,
		UserID:    m.UserID,
		Day:       m.Day,
		Status:    entity.HabitLogStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// HabitLogFromEntity creates a HabitLogModel from a domain HabitLog entity.
func HabitLogFromEntity(log *entity.HabitLog) *HabitLogModel {
	return &HabitLogModel{
		ID:        log.ID,
		HabitID:   log.HabitID,
		UserID:    log.UserID,
		Day:       log.Day,
		Status:    string(log.Status),
		CreatedAt: log.CreatedAt,
		UpdatedAt: log.UpdatedAt,
	}
}
