package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kairos-app/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID string          `json:"account_id" binding:"required,uuid"`
	Date      *time.Time      `json:"date"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Type      string          `json:"type" binding:"required,oneof=credit debit"`
	Category  string          `json:"category" binding:"omitempty,max=50"`
	Merchant  string          `json:"merchant" binding:"omitempty,max=100"`
}

// UpdateTransactionRequest represents the request body for transaction updates.
type UpdateTransactionRequest struct {
	Date     *time.Time       `json:"date"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     *string          `json:"type" binding:"omitempty,oneof=credit debit"`
	Category *string          `json:"category" binding:"omitempty,max=50"`
	Merchant *string          `json:"merchant" binding:"omitempty,max=100"`
}

// TransactionResponse represents transaction data in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category,omitempty"`
	Merchant  string          `json:"merchant,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
	Net    decimal.Decimal `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Type string `json:"type" binding:"required,oneof=checking savings credit cash"`
}

// AccountResponse represents account data in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToTransactionResponse converts a domain Transaction entity to a DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID.String(),
		AccountID: transaction.AccountID.String(),
		Date:      transaction.Date,
		Amount:    transaction.Amount,
		Type:      string(transaction.Type),
		Category:  transaction.Category,
		Merchant:  transaction.Merchant,
		CreatedAt: transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts transactions and totals to a list response DTO.
func ToTransactionListResponse(transactions []*entity.Transaction, totals *entity.TransactionTotals) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}

	return TransactionListResponse{
		Transactions: responses,
		Totals: TransactionTotalsResponse{
			Credit: totals.CreditTotal,
			Debit:  totals.DebitTotal,
			Net:    totals.NetTotal,
		},
	}
}

// ToAccountResponse converts a domain Account entity to a DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Type:      string(account.Type),
		CreatedAt: account.CreatedAt,
	}
}

// ToAccountListResponse converts accounts to a list response DTO.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountResponse(account))
	}
	return AccountListResponse{Accounts: responses}
}
