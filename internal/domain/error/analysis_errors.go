// Package error defines domain-specific errors for the Kairos application.
package error

import "errors"

// Cognitive analysis domain errors.
var (
	// ErrAnalysisNotFound is returned when no snapshot exists for the requested day.
	ErrAnalysisNotFound = errors.New("cognitive analysis snapshot not found")
)

// AnalysisErrorCode defines error codes for analysis errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalysisErrorCode string

const (
	ErrCodeAnalysisNotFound AnalysisErrorCode = "ANL-010001"
	ErrCodeAnalysisFailed   AnalysisErrorCode = "ANL-010002"
)

// AnalysisError represents an analysis error with code and message.
type AnalysisError struct {
	Code    AnalysisErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError with the given code and message.
func NewAnalysisError(code AnalysisErrorCode, message string, err error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
