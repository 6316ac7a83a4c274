package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for updating a journal entry.
// Nil fields are left unchanged.
type UpdateEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
	Title   *string
	Content *string
	Tags    *[]string
}

// UpdateEntryOutput represents the output of updating a journal entry.
type UpdateEntryOutput struct {
	Entry *entity.JournalEntry
}

// UpdateEntryUseCase handles journal entry update logic.
type UpdateEntryUseCase struct {
	journalRepo adapter.JournalRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(journalRepo adapter.JournalRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		journalRepo: journalRepo,
	}
}

// Execute performs the journal entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := findOwnedEntry(ctx, uc.journalRepo, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		entry.Title = *input.Title
	}

	if input.Content != nil {
		if *input.Content == "" {
			return nil, domainerror.NewJournalError(
				domainerror.ErrCodeEmptyJournalContent,
				"journal content is required",
				domainerror.ErrEmptyJournalContent,
			)
		}
		entry.Content = *input.Content
	}

	if input.Tags != nil {
		entry.Tags = *input.Tags
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.journalRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return &UpdateEntryOutput{
		Entry: entry,
	}, nil
}

// findOwnedEntry loads an entry and verifies it belongs to the caller.
func findOwnedEntry(ctx context.Context, repo adapter.JournalRepository, entryID, userID uuid.UUID) (*entity.JournalEntry, error) {
	entry, err := repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrJournalEntryNotFound) {
			return nil, domainerror.NewJournalError(
				domainerror.ErrCodeJournalEntryNotFound,
				"journal entry not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}

	if entry.UserID != userID {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeUnauthorizedJournal,
			"journal entry does not belong to the user",
			domainerror.ErrUnauthorizedJournalAccess,
		)
	}

	return entry, nil
}
