// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment represents the classified tone of a journal entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// JournalEntry represents a free-text journal entry.
// Sentiment is computed on read and never stored on the entry itself; it is
// only persisted transiently inside a daily cognitive analysis snapshot.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewJournalEntry creates a new JournalEntry entity.
func NewJournalEntry(userID uuid.UUID, title, content string, tags []string) *JournalEntry {
	now := time.Now().UTC()

	return &JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
