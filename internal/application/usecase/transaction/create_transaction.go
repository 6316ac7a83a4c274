// Package transaction contains transaction-related use cases.
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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	Type      entity.TransactionType
	Category  string
	Merchant  string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'credit' or 'debit'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if err := verifyAccountOwnership(ctx, uc.accountRepo, input.AccountID, input.UserID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.AccountID,
		date,
		input.Amount,
		input.Type,
		input.Category,
		input.Merchant,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(t entity.TransactionType) bool {
	return t == entity.TransactionTypeCredit || t == entity.TransactionTypeDebit
}

// verifyAccountOwnership checks the account exists and belongs to the caller.
func verifyAccountOwnership(ctx context.Context, repo adapter.AccountRepository, accountID, userID uuid.UUID) error {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				err,
			)
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	if account.UserID != userID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedAccount,
			"account does not belong to the user",
			domainerror.ErrUnauthorizedAccountAccess,
		)
	}

	return nil
}
