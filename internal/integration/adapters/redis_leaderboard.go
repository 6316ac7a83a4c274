package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kairos-app/backend/internal/application/adapter"
)

// leaderboardKey holds the XP sorted set; member = user ID, score = XP.
const leaderboardKey = "kairos:leaderboard:xp"

// RedisLeaderboard implements adapter.Leaderboard on a Redis sorted set.
type RedisLeaderboard struct {
	client *redis.Client
}

// NewRedisLeaderboard creates a new RedisLeaderboard instance.
func NewRedisLeaderboard(client *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{
		client: client,
	}
}

// SetScore records a user's current XP total.
func (l *RedisLeaderboard) SetScore(ctx context.Context, userID uuid.UUID, xp int) error {
	err := l.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(xp),
		Member: userID.String(),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to write leaderboard score: %w", err)
	}
	return nil
}

// Top retrieves up to limit entries ordered by XP descending.
func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]adapter.LeaderboardEntry, error) {
	members, err := l.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]adapter.LeaderboardEntry, 0, len(members))
	for i, member := range members {
		id, ok := member.Member.(string)
		if !ok {
			continue
		}
		userID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		entries = append(entries, adapter.LeaderboardEntry{
			UserID: userID,
			XP:     int(member.Score),
			Rank:   i + 1,
		})
	}
	return entries, nil
}

// Rank retrieves one user's entry, including their 1-based rank. A user
// absent from the set is reported as unranked with zero XP, not an error.
func (l *RedisLeaderboard) Rank(ctx context.Context, userID uuid.UUID) (*adapter.LeaderboardEntry, error) {
	member := userID.String()

	rank, err := l.client.ZRevRank(ctx, leaderboardKey, member).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read leaderboard rank: %w", err)
	}

	score, err := l.client.ZScore(ctx, leaderboardKey, member).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read leaderboard score: %w", err)
	}

	return &adapter.LeaderboardEntry{
		UserID: userID,
		XP:     int(score),
		Rank:   int(rank) + 1,
	}, nil
}
