package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
)

// DeleteEntryInput represents the input for deleting a journal entry.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteEntryUseCase handles journal entry deletion logic.
type DeleteEntryUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(journalRepo adapter.JournalRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		journalRepo: journalRepo,
	}
}

// Execute performs the journal entry deletion (soft delete). Deleted entries
// stop contributing to sentiment analysis.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	entry, err := findOwnedEntry(ctx, uc.journalRepo, input.EntryID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.journalRepo.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	return nil
}
