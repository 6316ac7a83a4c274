package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       *entity.TransactionTotals
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves transactions matching the filter along with their
// credit/debit totals.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && !isValidTransactionType(*input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'credit' or 'debit'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	filter := adapter.TransactionFilter{
		UserID:    input.UserID,
		AccountID: input.AccountID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transaction totals: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Totals:       totals,
	}, nil
}
