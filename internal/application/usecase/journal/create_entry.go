// Package journal contains journal-related use cases.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// CreateEntryInput represents the input for journal entry creation.
type CreateEntryInput struct {
	UserID  uuid.UUID
	Title   string
	Content string
	Tags    []string
}

// CreateEntryOutput represents the output of journal entry creation.
type CreateEntryOutput struct {
	Entry     *entity.JournalEntry
	XPAwarded int
}

// CreateEntryUseCase handles journal entry creation. The first entry of a
// calendar day earns a fixed XP reward; further entries that day do not.
type CreateEntryUseCase struct {
	journalRepo adapter.JournalRepository
	userRepo    adapter.UserRepository
	leaderboard adapter.Leaderboard // Optional, may be nil
	now         func() time.Time
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	journalRepo adapter.JournalRepository,
	userRepo adapter.UserRepository,
	leaderboard adapter.Leaderboard,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		journalRepo: journalRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
		now:         time.Now,
	}
}

// Execute performs the journal entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if input.Content == "" {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeEmptyJournalContent,
			"journal content is required",
			domainerror.ErrEmptyJournalContent,
		)
	}

	now := uc.now()
	dayStart := valueobject.NormalizeDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	existing, err := uc.journalRepo.CountByUserAndDay(ctx, input.UserID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's entries: %w", err)
	}

	entry := entity.NewJournalEntry(input.UserID, input.Title, input.Content, input.Tags)

	if err := uc.journalRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	awarded := 0
	if existing == 0 {
		awarded = uc.awardFirstEntryXP(ctx, input.UserID)
	}

	return &CreateEntryOutput{
		Entry:     entry,
		XPAwarded: awarded,
	}, nil
}

// awardFirstEntryXP grants the daily journaling reward and refreshes the
// leaderboard. The entry itself is already persisted, so failures here are
// logged and swallowed rather than failing the request.
func (uc *CreateEntryUseCase) awardFirstEntryXP(ctx context.Context, userID uuid.UUID) int {
	newTotal, err := uc.userRepo.AddXP(ctx, userID, entity.XPFirstJournalEntry)
	if err != nil {
		slog.Warn("failed to award journal XP", "user_id", userID, "error", err)
		return 0
	}

	if uc.leaderboard != nil {
		if err := uc.leaderboard.SetScore(ctx, userID, newTotal); err != nil {
			slog.Warn("failed to update leaderboard", "user_id", userID, "error", err)
		}
	}

	return entity.XPFirstJournalEntry
}
