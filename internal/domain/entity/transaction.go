// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction represents a financial transaction in the Kairos system.
// Amount is always non-negative; Type carries the direction.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	Type      TransactionType
	Category  string
	Merchant  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	merchant string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		AccountID: accountID,
		Date:      date,
		Amount:    amount,
		Type:      transactionType,
		Category:  category,
		Merchant:  merchant,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransactionTotals represents aggregated totals for a set of transactions.
type TransactionTotals struct {
	CreditTotal decimal.Decimal
	DebitTotal  decimal.Decimal
	NetTotal    decimal.Decimal
}
