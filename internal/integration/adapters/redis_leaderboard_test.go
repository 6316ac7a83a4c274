package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestLeaderboard(t *testing.T) *RedisLeaderboard {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLeaderboard(client)
}

func TestRedisLeaderboardTopOrdersByXP(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	low := uuid.New()
	mid := uuid.New()
	high := uuid.New()

	for _, entry := range []struct {
		id uuid.UUID
		xp int
	}{{low, 10}, {high, 300}, {mid, 120}} {
		if err := board.SetScore(ctx, entry.id, entry.xp); err != nil {
			t.Fatalf("SetScore() error = %v", err)
		}
	}

	entries, err := board.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantIDs := []uuid.UUID{high, mid, low}
	wantXP := []int{300, 120, 10}
	for i, entry := range entries {
		if entry.UserID != wantIDs[i] {
			t.Errorf("position %d: got user %s, want %s", i, entry.UserID, wantIDs[i])
		}
		if entry.XP != wantXP[i] {
			t.Errorf("position %d: XP = %d, want %d", i, entry.XP, wantXP[i])
		}
		if entry.Rank != i+1 {
			t.Errorf("position %d: Rank = %d, want %d", i, entry.Rank, i+1)
		}
	}
}

func TestRedisLeaderboardTopHonorsLimit(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := board.SetScore(ctx, uuid.New(), (i+1)*10); err != nil {
			t.Fatalf("SetScore() error = %v", err)
		}
	}

	entries, err := board.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestRedisLeaderboardSetScoreOverwrites(t *testing.T) {
	board := newTestLeaderboard(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := board.SetScore(ctx, userID, 10); err != nil {
		t.Fatalf("SetScore() error = %v", err)
	}
	if err := board.SetScore(ctx, userID, 50); err != nil {
		t.Fatalf("SetScore() error = %v", err)
	}

	entry, err := board.Rank(ctx, userID)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if entry == nil {
		t.Fatal("Rank() returned nil for a ranked user")
	}
	if entry.XP != 50 {
		t.Errorf("XP = %d, want 50 after overwrite", entry.XP)
	}
	if entry.Rank != 1 {
		t.Errorf("Rank = %d, want 1", entry.Rank)
	}
}

func TestRedisLeaderboardRankUnknownUser(t *testing.T) {
	board := newTestLeaderboard(t)

	entry, err := board.Rank(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry for unranked user, got %+v", entry)
	}
}
