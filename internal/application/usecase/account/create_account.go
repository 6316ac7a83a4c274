// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID uuid.UUID
	Name   string
	Type   entity.AccountType
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"account name is required",
			nil,
		)
	}

	if !isValidAccountType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAccountType,
			"type must be 'checking', 'savings', 'credit', or 'cash'",
			domainerror.ErrInvalidAccountType,
		)
	}

	account := entity.NewAccount(input.UserID, input.Name, input.Type)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}

// isValidAccountType validates the account type.
func isValidAccountType(t entity.AccountType) bool {
	switch t {
	case entity.AccountTypeChecking, entity.AccountTypeSavings, entity.AccountTypeCredit, entity.AccountTypeCash:
		return true
	default:
		return false
	}
}
