// Package error defines domain-specific errors for the Kairos application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrUnauthorizedHabitAccess is returned when a habit does not belong to the caller.
	ErrUnauthorizedHabitAccess = errors.New("unauthorized access to habit")

	// ErrInvalidHabitFrequency is returned when the habit frequency is invalid.
	ErrInvalidHabitFrequency = errors.New("invalid habit frequency")

	// ErrInvalidLogStatus is returned when a habit log status is not done/none.
	ErrInvalidLogStatus = errors.New("invalid habit log status")

	// ErrDuplicateHabitLog is returned when the per-day uniqueness constraint
	// rejects a concurrent duplicate log write.
	ErrDuplicateHabitLog = errors.New("habit already logged for this day")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound          HabitErrorCode = "HAB-010001"
	ErrCodeUnauthorizedHabit      HabitErrorCode = "HAB-010002"
	ErrCodeInvalidHabitFrequency  HabitErrorCode = "HAB-010003"
	ErrCodeMissingHabitFields     HabitErrorCode = "HAB-010004"

	// Log errors (02XXXX)
	ErrCodeInvalidLogStatus  HabitErrorCode = "HAB-020001"
	ErrCodeDuplicateHabitLog HabitErrorCode = "HAB-020002"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
