package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Category      *string
	Merchant      *string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := findOwnedTransaction(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Type != nil {
		if !isValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'credit' or 'debit'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Category != nil {
		transaction.Category = *input.Category
	}

	if input.Merchant != nil {
		transaction.Merchant = *input.Merchant
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// findOwnedTransaction loads a transaction and verifies it belongs to the caller.
func findOwnedTransaction(ctx context.Context, repo adapter.TransactionRepository, transactionID, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedTransaction,
			"transaction does not belong to the user",
			domainerror.ErrUnauthorizedTransactionAccess,
		)
	}

	return transaction, nil
}
