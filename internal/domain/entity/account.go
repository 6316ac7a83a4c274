// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the kind of financial account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeCash     AccountType = "cash"
)

// Account represents a financial account transactions belong to.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      AccountType
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      accountType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
