package journal

import (
	"context"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
)

// GetEntryInput represents the input for fetching a single journal entry.
type GetEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// GetEntryOutput represents the output of fetching a single journal entry.
type GetEntryOutput struct {
	Entry *entity.JournalEntry
}

// GetEntryUseCase handles single journal entry retrieval.
type GetEntryUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(journalRepo adapter.JournalRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		journalRepo: journalRepo,
	}
}

// Execute retrieves one of the user's journal entries.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	entry, err := findOwnedEntry(ctx, uc.journalRepo, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetEntryOutput{
		Entry: entry,
	}, nil
}
