// Package gamification contains the XP and leaderboard use cases.
package gamification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kairos-app/backend/internal/application/adapter"
)

const defaultLeaderboardLimit = 10

// GetLeaderboardInput represents the input for the leaderboard query.
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput represents the output of the leaderboard query.
type GetLeaderboardOutput struct {
	Entries []adapter.LeaderboardEntry
}

// GetLeaderboardUseCase returns the top users by XP. Redis serves the
// ranking; when it is unreachable the user table answers instead.
type GetLeaderboardUseCase struct {
	leaderboard adapter.Leaderboard // Optional, may be nil
	userRepo    adapter.UserRepository
}

// NewGetLeaderboardUseCase creates a new GetLeaderboardUseCase instance.
func NewGetLeaderboardUseCase(leaderboard adapter.Leaderboard, userRepo adapter.UserRepository) *GetLeaderboardUseCase {
	return &GetLeaderboardUseCase{
		leaderboard: leaderboard,
		userRepo:    userRepo,
	}
}

// Execute retrieves up to Limit leaderboard entries, XP descending.
func (uc *GetLeaderboardUseCase) Execute(ctx context.Context, input GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	if uc.leaderboard != nil {
		entries, err := uc.leaderboard.Top(ctx, limit)
		if err == nil {
			return &GetLeaderboardOutput{Entries: entries}, nil
		}
		slog.Warn("leaderboard store unavailable, falling back to sql", "error", err)
	}

	users, err := uc.userRepo.TopByXP(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank users by xp: %w", err)
	}

	entries := make([]adapter.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, adapter.LeaderboardEntry{
			UserID: u.ID,
			XP:     u.XP,
			Rank:   i + 1,
		})
	}

	return &GetLeaderboardOutput{Entries: entries}, nil
}
