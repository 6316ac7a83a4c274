package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/persistence/model"
)

// todoRepository implements the adapter.TodoRepository interface.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository instance.
func NewTodoRepository(db *gorm.DB) adapter.TodoRepository {
	return &todoRepository{
		db: db,
	}
}

// Create creates a new todo in the database.
func (r *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoModel := model.TodoFromEntity(todo)
	result := r.db.WithContext(ctx).Create(todoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a todo by its ID.
func (r *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	var todoModel model.TodoModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&todoModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTodoNotFound
		}
		return nil, result.Error
	}
	return todoModel.ToEntity(), nil
}

// FindByFilter retrieves non-deleted todos matching the filter.
func (r *todoRepository) FindByFilter(ctx context.Context, filter adapter.TodoFilter) ([]*entity.Todo, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.DayStart != nil {
		query = query.Where("date >= ?", *filter.DayStart)
	}
	if filter.DayEnd != nil {
		query = query.Where("date <= ?", *filter.DayEnd)
	}
	if filter.IsCompleted != nil {
		query = query.Where("is_completed = ?", *filter.IsCompleted)
	}

	var todoModels []model.TodoModel
	result := query.Order("date ASC, created_at ASC").Find(&todoModels)
	if result.Error != nil {
		return nil, result.Error
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for i := range todoModels {
		todos = append(todos, todoModels[i].ToEntity())
	}
	return todos, nil
}

// CountByUserAndDay counts a user's todos planned for one day, split into
// total and completed.
func (r *todoRepository) CountByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (int64, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.TodoModel{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dayStart, dayEnd)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := base.Session(&gorm.Session{}).Where("is_completed = ?", true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}

// Update updates an existing todo in the database.
func (r *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	todoModel := model.TodoFromEntity(todo)
	result := r.db.WithContext(ctx).Save(todoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a todo from the database (soft delete).
func (r *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TodoModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
