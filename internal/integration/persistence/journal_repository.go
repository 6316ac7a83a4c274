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

// journalRepository implements the adapter.JournalRepository interface.
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository instance.
func NewJournalRepository(db *gorm.DB) adapter.JournalRepository {
	return &journalRepository{
		db: db,
	}
}

// Create creates a new journal entry in the database.
func (r *journalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	entryModel := model.JournalEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a journal entry by its ID.
func (r *journalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error) {
	var entryModel model.JournalEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrJournalEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserID retrieves all non-deleted entries for a user, newest first.
func (r *journalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error) {
	var entryModels []model.JournalEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.JournalEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, entryModels[i].ToEntity())
	}
	return entries, nil
}

// FindMostRecent retrieves the newest non-deleted entry for a user, or nil
// when none exists.
func (r *journalRepository) FindMostRecent(ctx context.Context, userID uuid.UUID) (*entity.JournalEntry, error) {
	var entryModel model.JournalEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// CountByUserAndDay counts non-deleted entries created by a user within one day.
func (r *journalRepository) CountByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.JournalEntryModel{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, dayStart, dayEnd).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing journal entry in the database.
func (r *journalRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	entryModel := model.JournalEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a journal entry from the database (soft delete).
func (r *journalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.JournalEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
