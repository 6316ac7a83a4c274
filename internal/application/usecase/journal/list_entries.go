package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing journal entries.
type ListEntriesInput struct {
	UserID uuid.UUID
}

// ListEntriesOutput represents the output of listing journal entries.
type ListEntriesOutput struct {
	Entries []*entity.JournalEntry
}

// ListEntriesUseCase handles journal listing logic.
type ListEntriesUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(journalRepo adapter.JournalRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		journalRepo: journalRepo,
	}
}

// Execute retrieves the user's journal entries, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.journalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
