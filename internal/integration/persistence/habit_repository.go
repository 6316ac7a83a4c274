// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create creates a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindByUserID retrieves all habits for a given user.
func (r *habitRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, 0, len(habitModels))
	for i := range habitModels {
		habits = append(habits, habitModels[i].ToEntity())
	}
	return habits, nil
}

// Update updates an existing habit in the database.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Save(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateStreaks overwrites the cached streak fields for a habit.
func (r *habitRepository) UpdateStreaks(ctx context.Context, id uuid.UUID, currentStreak, bestStreak int) error {
	result := r.db.WithContext(ctx).Model(&model.HabitModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_streak": currentStreak,
			"best_streak":    bestStreak,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrHabitNotFound
	}
	return nil
}

// Delete removes a habit from the database (soft delete). Logs stay behind
// so a re-created habit history remains auditable.
func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HabitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// habitLogRepository implements the adapter.HabitLogRepository interface.
type habitLogRepository struct {
	db *gorm.DB
}

// NewHabitLogRepository creates a new habit log repository instance.
func NewHabitLogRepository(db *gorm.DB) adapter.HabitLogRepository {
	return &habitLogRepository{
		db: db,
	}
}

// Upsert writes the status for one (habit, day) pair. The conflict target is
// the composite unique index, so a concurrent double-submission updates the
// existing row instead of erroring.
func (r *habitLogRepository) Upsert(ctx context.Context, log *entity.HabitLog) error {
	logModel := model.HabitLogFromEntity(log)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(logModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindDoneDays retrieves the days with a "done" log for one habit, ascending.
func (r *habitLogRepository) FindDoneDays(ctx context.Context, habitID uuid.UUID) ([]time.Time, error) {
	var logModels []model.HabitLogModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND status = ?", habitID, string(entity.HabitLogStatusDone)).
		Order("day ASC").
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make([]time.Time, 0, len(logModels))
	for i := range logModels {
		days = append(days, logModels[i].Day)
	}
	return days, nil
}

// FindByHabitAndRange retrieves logs for one habit within [start, end].
func (r *habitLogRepository) FindByHabitAndRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*entity.HabitLog, error) {
	var logModels []model.HabitLogModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND day >= ? AND day <= ?", habitID, start, end).
		Order("day ASC").
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toLogEntities(logModels), nil
}

// FindByUserAndDay retrieves all of a user's logs for one day.
func (r *habitLogRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.HabitLog, error) {
	var logModels []model.HabitLogModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toLogEntities(logModels), nil
}

func toLogEntities(logModels []model.HabitLogModel) []*entity.HabitLog {
	logs := make([]*entity.HabitLog, 0, len(logModels))
	for i := range logModels {
		logs = append(logs, logModels[i].ToEntity())
	}
	return logs
}
