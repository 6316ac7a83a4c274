// Package error defines domain-specific errors for the Kairos application.
package error

import "errors"

// Journal domain errors.
var (
	// ErrJournalEntryNotFound is returned when a journal entry is not found.
	ErrJournalEntryNotFound = errors.New("journal entry not found")

	// ErrUnauthorizedJournalAccess is returned when an entry does not belong to the caller.
	ErrUnauthorizedJournalAccess = errors.New("unauthorized access to journal entry")

	// ErrEmptyJournalContent is returned when the entry content is empty.
	ErrEmptyJournalContent = errors.New("journal content must not be empty")
)

// JournalErrorCode defines error codes for journal errors.
// Format: JRN-XXYYYY where XX is category and YYYY is specific error.
type JournalErrorCode string

const (
	ErrCodeJournalEntryNotFound  JournalErrorCode = "JRN-010001"
	ErrCodeUnauthorizedJournal   JournalErrorCode = "JRN-010002"
	ErrCodeEmptyJournalContent   JournalErrorCode = "JRN-010003"
	ErrCodeMissingJournalFields  JournalErrorCode = "JRN-010004"
)

// JournalError represents a journal error with code and message.
type JournalError struct {
	Code    JournalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *JournalError) Unwrap() error {
	return e.Err
}

// NewJournalError creates a new JournalError with the given code and message.
func NewJournalError(code JournalErrorCode, message string, err error) *JournalError {
	return &JournalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
