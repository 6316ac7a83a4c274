package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction deletion (soft delete). Deleted
// transactions stop counting toward the 30-day financial dip check.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := findOwnedTransaction(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
