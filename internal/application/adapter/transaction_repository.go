// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// TransactionFilter restricts which transactions are listed.
type TransactionFilter struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves non-deleted transactions matching the filter,
	// newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// CountByTypeAndRange counts a user's transactions of one type with a
	// date inside [start, end].
	CountByTypeAndRange(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType, start, end time.Time) (int64, error)

	// GetTotals aggregates credit/debit totals for the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*entity.TransactionTotals, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUserID retrieves all non-deleted accounts for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)
}
