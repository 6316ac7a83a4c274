package dto

import (
	"github.com/kairos-app/backend/internal/application/adapter"
)

// LeaderboardEntryResponse represents one leaderboard position in API responses.
type LeaderboardEntryResponse struct {
	UserID string `json:"user_id"`
	XP     int    `json:"xp"`
	Rank   int    `json:"rank"`
}

// LeaderboardResponse represents the response for the leaderboard query.
type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// MyRankResponse represents the caller's own leaderboard position.
type MyRankResponse struct {
	UserID string `json:"user_id"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	Rank   int    `json:"rank"` // 0 when unranked
}

// ToLeaderboardResponse converts leaderboard entries to a response DTO.
func ToLeaderboardResponse(entries []adapter.LeaderboardEntry) LeaderboardResponse {
	responses := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, LeaderboardEntryResponse{
			UserID: entry.UserID.String(),
			XP:     entry.XP,
			Rank:   entry.Rank,
		})
	}
	return LeaderboardResponse{Entries: responses}
}
