// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardEntry represents one user's position on the XP leaderboard.
type LeaderboardEntry struct {
	UserID uuid.UUID
	XP     int
	Rank   int
}

// Leaderboard defines the interface for the XP ranking store.
//
// The implementation is a Redis sorted set; callers must treat it as a
// best-effort cache seeded from the user table and fall back to SQL when it
// is unavailable.
type Leaderboard interface {
	// SetScore records a user's current XP total.
	SetScore(ctx context.Context, userID uuid.UUID, xp int) error

	// Top retrieves up to limit entries ordered by XP descending.
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)

	// Rank retrieves one user's entry, including their 1-based rank.
	Rank(ctx context.Context, userID uuid.UUID) (*LeaderboardEntry, error)
}
