package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the user's accounts.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsOutput{
		Accounts: accounts,
	}, nil
}
