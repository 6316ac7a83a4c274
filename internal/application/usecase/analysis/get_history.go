package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// defaultHistoryWindow bounds a history query with no explicit range.
const defaultHistoryWindow = 30

// GetHistoryInput represents the input for the snapshot history query.
type GetHistoryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetHistoryOutput represents the output of the snapshot history query.
type GetHistoryOutput struct {
	Snapshots []*entity.CognitiveAnalysis
}

// GetHistoryUseCase returns a user's stored daily snapshots, oldest first.
// It only reads what GetAnalysisUseCase has already persisted; no scores are
// recomputed here.
type GetHistoryUseCase struct {
	analysisRepo adapter.AnalysisRepository
	now          func() time.Time
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(analysisRepo adapter.AnalysisRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		analysisRepo: analysisRepo,
		now:          time.Now,
	}
}

// Execute retrieves the snapshots inside [start, end]. A missing end defaults
// to today and a missing start to the trailing 30 days.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	end := valueobject.NormalizeDay(uc.now())
	if input.EndDate != nil {
		end = valueobject.NormalizeDay(*input.EndDate)
	}

	start := end.AddDate(0, 0, -defaultHistoryWindow)
	if input.StartDate != nil {
		start = valueobject.NormalizeDay(*input.StartDate)
	}

	snapshots, err := uc.analysisRepo.FindByUserAndRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}

	return &GetHistoryOutput{
		Snapshots: snapshots,
	}, nil
}
