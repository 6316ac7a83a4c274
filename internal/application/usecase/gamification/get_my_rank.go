package gamification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// GetMyRankInput represents the input for the rank query.
type GetMyRankInput struct {
	UserID uuid.UUID
}

// GetMyRankOutput represents the output of the rank query.
type GetMyRankOutput struct {
	Entry adapter.LeaderboardEntry
	Level int
}

// GetMyRankUseCase returns the caller's leaderboard position and level.
type GetMyRankUseCase struct {
	leaderboard adapter.Leaderboard // Optional, may be nil
	userRepo    adapter.UserRepository
}

// NewGetMyRankUseCase creates a new GetMyRankUseCase instance.
func NewGetMyRankUseCase(leaderboard adapter.Leaderboard, userRepo adapter.UserRepository) *GetMyRankUseCase {
	return &GetMyRankUseCase{
		leaderboard: leaderboard,
		userRepo:    userRepo,
	}
}

// Execute retrieves the caller's XP, level and 1-based rank. When Redis has
// no entry for the user (or is down), XP comes from the user row and the
// rank is reported as 0 (unranked).
func (uc *GetMyRankUseCase) Execute(ctx context.Context, input GetMyRankInput) (*GetMyRankOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	entry := adapter.LeaderboardEntry{
		UserID: user.ID,
		XP:     user.XP,
	}

	if uc.leaderboard != nil {
		ranked, err := uc.leaderboard.Rank(ctx, input.UserID)
		if err != nil {
			slog.Warn("leaderboard store unavailable for rank lookup", "user_id", input.UserID, "error", err)
		} else if ranked != nil {
			entry = *ranked
		}
	}

	return &GetMyRankOutput{
		Entry: entry,
		Level: user.Level(),
	}, nil
}
