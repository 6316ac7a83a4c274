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

// GetAnalysisInput represents the input for computing the daily analysis.
type GetAnalysisInput struct {
	UserID uuid.UUID
}

// GetAnalysisOutput represents the output of computing the daily analysis.
type GetAnalysisOutput struct {
	Analysis *entity.CognitiveAnalysis
}

// GetAnalysisUseCase recomputes and persists the caller's snapshot for the
// current day from live habit, todo, transaction and journal data.
type GetAnalysisUseCase struct {
	habitRepo       adapter.HabitRepository
	habitLogRepo    adapter.HabitLogRepository
	todoRepo        adapter.TodoRepository
	transactionRepo adapter.TransactionRepository
	journalRepo     adapter.JournalRepository
	analysisRepo    adapter.AnalysisRepository
	now             func() time.Time
}

// NewGetAnalysisUseCase creates a new GetAnalysisUseCase instance.
func NewGetAnalysisUseCase(
	habitRepo adapter.HabitRepository,
	habitLogRepo adapter.HabitLogRepository,
	todoRepo adapter.TodoRepository,
	transactionRepo adapter.TransactionRepository,
	journalRepo adapter.JournalRepository,
	analysisRepo adapter.AnalysisRepository,
) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{
		habitRepo:       habitRepo,
		habitLogRepo:    habitLogRepo,
		todoRepo:        todoRepo,
		transactionRepo: transactionRepo,
		journalRepo:     journalRepo,
		analysisRepo:    analysisRepo,
		now:             time.Now,
	}
}

// Execute gathers today's signals, derives the five scores and upserts the
// snapshot for (user, today). Calling it twice in one day overwrites the
// stored row rather than duplicating it.
func (uc *GetAnalysisUseCase) Execute(ctx context.Context, input GetAnalysisInput) (*GetAnalysisOutput, error) {
	now := uc.now()
	day := valueobject.NormalizeDay(now)
	dayEnd := day.AddDate(0, 0, 1).Add(-time.Nanosecond)

	habitRatio, err := uc.habitCompletionRatio(ctx, input.UserID, day)
	if err != nil {
		return nil, err
	}

	taskRatio, err := uc.taskCompletionRatio(ctx, input.UserID, day, dayEnd)
	if err != nil {
		return nil, err
	}

	financialDip, err := uc.hasFinancialDip(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	sentiment, err := uc.latestJournalSentiment(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	scoreInput := ScoreInput{
		HabitRatio:   habitRatio,
		TaskRatio:    taskRatio,
		FinancialDip: financialDip,
		Sentiment:    sentiment,
	}
	scores := ComputeScores(scoreInput)

	snapshot := entity.NewCognitiveAnalysis(input.UserID, day)
	snapshot.MoodScore = scores.Mood
	snapshot.StressLevel = scores.Stress
	snapshot.ProductivityScore = scores.Productivity
	snapshot.FinancialStabilityScore = scores.FinancialStability
	snapshot.ResilienceScore = scores.Resilience
	snapshot.Indicators = buildIndicators(scoreInput, scores)

	if err := uc.analysisRepo.Upsert(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist analysis snapshot: %w", err)
	}

	return &GetAnalysisOutput{
		Analysis: snapshot,
	}, nil
}

// habitCompletionRatio returns the share of the user's habits logged "done"
// today, on a 0-100 scale. No habits means 0.
func (uc *GetAnalysisUseCase) habitCompletionRatio(ctx context.Context, userID uuid.UUID, day time.Time) (float64, error) {
	habits, err := uc.habitRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load habits: %w", err)
	}
	if len(habits) == 0 {
		return 0, nil
	}

	logs, err := uc.habitLogRepo.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		return 0, fmt.Errorf("failed to load habit logs: %w", err)
	}

	done := 0
	for _, log := range logs {
		if log.Status == entity.HabitLogStatusDone {
			done++
		}
	}

	return float64(done) / float64(len(habits)) * 100, nil
}

// taskCompletionRatio returns the share of today's todos already completed,
// on a 0-100 scale. No todos means 0.
func (uc *GetAnalysisUseCase) taskCompletionRatio(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (float64, error) {
	total, completed, err := uc.todoRepo.CountByUserAndDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	return float64(completed) / float64(total) * 100, nil
}

// hasFinancialDip reports whether the user recorded zero credit transactions
// in the trailing 30 days.
func (uc *GetAnalysisUseCase) hasFinancialDip(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	start := now.AddDate(0, 0, -30)

	credits, err := uc.transactionRepo.CountByTypeAndRange(ctx, userID, entity.TransactionTypeCredit, start, now)
	if err != nil {
		return false, fmt.Errorf("failed to count credit transactions: %w", err)
	}

	return credits == 0, nil
}

// latestJournalSentiment classifies the user's most recent entry, defaulting
// to neutral when no entry exists.
func (uc *GetAnalysisUseCase) latestJournalSentiment(ctx context.Context, userID uuid.UUID) (entity.Sentiment, error) {
	entry, err := uc.journalRepo.FindMostRecent(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load latest journal entry: %w", err)
	}
	if entry == nil {
		return entity.SentimentNeutral, nil
	}

	return ClassifySentiment(entry.Content), nil
}

// buildIndicators tags the snapshot with the signals that drove it.
func buildIndicators(input ScoreInput, scores Scores) []string {
	indicators := make([]string, 0, 4)

	if input.FinancialDip {
		indicators = append(indicators, "financial_dip")
	}
	if input.Sentiment == entity.SentimentNegative {
		indicators = append(indicators, "negative_journal_sentiment")
	}
	if scores.Productivity < 50 {
		indicators = append(indicators, "low_productivity")
	}
	if scores.Stress >= 50 {
		indicators = append(indicators, "high_stress")
	}

	return indicators
}
