package dto

import (
	"time"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// CreateJournalEntryRequest represents the request body for journal entry creation.
type CreateJournalEntryRequest struct {
	Title   string   `json:"title" binding:"omitempty,max=200"`
	Content string   `json:"content" binding:"required,min=1"`
	Tags    []string `json:"tags" binding:"omitempty,dive,max=50"`
}

// UpdateJournalEntryRequest represents the request body for journal entry updates.
type UpdateJournalEntryRequest struct {
	Title   *string   `json:"title" binding:"omitempty,max=200"`
	Content *string   `json:"content" binding:"omitempty,min=1"`
	Tags    *[]string `json:"tags" binding:"omitempty,dive,max=50"`
}

// JournalEntryResponse represents journal entry data in API responses.
type JournalEntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateJournalEntryResponse represents the response after creating an entry.
type CreateJournalEntryResponse struct {
	JournalEntryResponse
	XPAwarded int `json:"xp_awarded"`
}

// JournalEntryListResponse represents the response for listing journal entries.
type JournalEntryListResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain JournalEntry entity to a DTO.
func ToJournalEntryResponse(entry *entity.JournalEntry) JournalEntryResponse {
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}

	return JournalEntryResponse{
		ID:        entry.ID.String(),
		Title:     entry.Title,
		Content:   entry.Content,
		Tags:      tags,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToJournalEntryListResponse converts journal entries to a list response DTO.
func ToJournalEntryListResponse(entries []*entity.JournalEntry) JournalEntryListResponse {
	responses := make([]JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToJournalEntryResponse(entry))
	}
	return JournalEntryListResponse{Entries: responses}
}
