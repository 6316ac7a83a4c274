package dto

import (
	"time"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Frequency *string `json:"frequency" binding:"omitempty,oneof=daily weekly custom"`
	Category  string  `json:"category" binding:"omitempty,max=50"`
}

// UpdateHabitRequest represents the request body for habit updates.
type UpdateHabitRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Frequency *string `json:"frequency" binding:"omitempty,oneof=daily weekly custom"`
	Category  *string `json:"category" binding:"omitempty,max=50"`
}

// LogHabitRequest represents the request body for toggling a habit log.
type LogHabitRequest struct {
	HabitID string  `json:"habit_id" binding:"required,uuid"`
	Status  string  `json:"status" binding:"required,oneof=done none"`
	Date    *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// HabitResponse represents habit data in API responses.
type HabitResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Frequency     string    `json:"frequency"`
	Category      string    `json:"category,omitempty"`
	CurrentStreak int       `json:"current_streak"`
	BestStreak    int       `json:"best_streak"`
	CreatedAt     time.Time `json:"created_at"`
}

// HabitLogResponse represents one habit log in API responses.
type HabitLogResponse struct {
	Day    string `json:"day"`
	Status string `json:"status"`
}

// HabitWithLogsResponse represents a habit merged with a window of its logs.
type HabitWithLogsResponse struct {
	HabitResponse
	TodayStatus string             `json:"today_status"`
	Logs        []HabitLogResponse `json:"logs"`
}

// LogHabitResponse represents the response for a habit log toggle.
type LogHabitResponse struct {
	Success       bool `json:"success"`
	CurrentStreak int  `json:"current_streak"`
	BestStreak    int  `json:"best_streak"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitWithLogsResponse `json:"habits"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(habit *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:            habit.ID.String(),
		Name:          habit.Name,
		Frequency:     string(habit.Frequency),
		Category:      habit.Category,
		CurrentStreak: habit.CurrentStreak,
		BestStreak:    habit.BestStreak,
		CreatedAt:     habit.CreatedAt,
	}
}

// ToHabitListResponse converts habits with logs to a HabitListResponse DTO.
func ToHabitListResponse(habits []*entity.HabitWithLogs) HabitListResponse {
	responses := make([]HabitWithLogsResponse, 0, len(habits))
	for _, h := range habits {
		logs := make([]HabitLogResponse, 0, len(h.Logs))
		for _, log := range h.Logs {
			logs = append(logs, HabitLogResponse{
				Day:    log.Day.Format("2006-01-02"),
				Status: string(log.Status),
			})
		}

		responses = append(responses, HabitWithLogsResponse{
			HabitResponse: ToHabitResponse(h.Habit),
			TodayStatus:   string(h.TodayStatus),
			Logs:          logs,
		})
	}

	return HabitListResponse{Habits: responses}
}
