// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// JournalRepository defines the interface for journal entry persistence operations.
type JournalRepository interface {
	// Create creates a new journal entry in the database.
	Create(ctx context.Context, entry *entity.JournalEntry) error

	// FindByID retrieves a journal entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error)

	// FindByUserID retrieves all non-deleted entries for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error)

	// FindMostRecent retrieves the newest non-deleted entry for a user, or
	// nil when none exists.
	FindMostRecent(ctx context.Context, userID uuid.UUID) (*entity.JournalEntry, error)

	// CountByUserAndDay counts non-deleted entries created by a user within one day.
	CountByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (int64, error)

	// Update updates an existing journal entry in the database.
	Update(ctx context.Context, entry *entity.JournalEntry) error

	// Delete removes a journal entry from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
