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

// analysisRepository implements the adapter.AnalysisRepository interface.
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository instance.
func NewAnalysisRepository(db *gorm.DB) adapter.AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// Upsert writes the snapshot for (user, day). The conflict target is the
// composite unique index, so recomputing the same day overwrites the stored
// scores instead of inserting a second row.
func (r *analysisRepository) Upsert(ctx context.Context, analysis *entity.CognitiveAnalysis) error {
	analysisModel := model.CognitiveAnalysisFromEntity(analysis)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mood_score",
			"stress_level",
			"productivity_score",
			"financial_stability_score",
			"resilience_score",
			"indicators",
			"updated_at",
		}),
	}).Create(analysisModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndDay retrieves the snapshot for one (user, day) pair.
func (r *analysisRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.CognitiveAnalysis, error) {
	var analysisModel model.CognitiveAnalysisModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&analysisModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAnalysisNotFound
		}
		return nil, result.Error
	}
	return analysisModel.ToEntity(), nil
}

// FindByUserAndRange retrieves snapshots for a user within [start, end],
// oldest first.
func (r *analysisRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CognitiveAnalysis, error) {
	var analysisModels []model.CognitiveAnalysisModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day <= ?", userID, start, end).
		Order("day ASC").
		Find(&analysisModels)
	if result.Error != nil {
		return nil, result.Error
	}

	analyses := make([]*entity.CognitiveAnalysis, 0, len(analysisModels))
	for i := range analysisModels {
		analyses = append(analyses, analysisModels[i].ToEntity())
	}
	return analyses, nil
}
