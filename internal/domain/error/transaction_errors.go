// Package error defines domain-specific errors for the Kairos application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnauthorizedTransactionAccess is returned when a transaction does not belong to the caller.
	ErrUnauthorizedTransactionAccess = errors.New("unauthorized access to transaction")

	// ErrInvalidTransactionType is returned when the type is not credit/debit.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeAmount is returned when the amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrAccountNotFound is returned when the referenced account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUnauthorizedAccountAccess is returned when an account does not belong to the caller.
	ErrUnauthorizedAccountAccess = errors.New("unauthorized access to account")

	// ErrInvalidAccountType is returned when the account type is unknown.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Transaction errors (01XXXX)
	ErrCodeTransactionNotFound     TransactionErrorCode = "TRX-010001"
	ErrCodeUnauthorizedTransaction TransactionErrorCode = "TRX-010002"
	ErrCodeInvalidTransactionType  TransactionErrorCode = "TRX-010003"
	ErrCodeNegativeAmount          TransactionErrorCode = "TRX-010004"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TRX-010005"

	// Account errors (02XXXX)
	ErrCodeAccountNotFound     TransactionErrorCode = "TRX-020001"
	ErrCodeUnauthorizedAccount TransactionErrorCode = "TRX-020002"
	ErrCodeInvalidAccountType  TransactionErrorCode = "TRX-020003"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
