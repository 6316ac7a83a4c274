// Package error defines domain-specific errors for the Kairos application.
package error

import "errors"

// Todo domain errors.
var (
	// ErrTodoNotFound is returned when a todo is not found in the system.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrUnauthorizedTodoAccess is returned when a todo does not belong to the caller.
	ErrUnauthorizedTodoAccess = errors.New("unauthorized access to todo")

	// ErrInvalidTodoPriority is returned when the priority is outside 1..10.
	ErrInvalidTodoPriority = errors.New("priority must be between 1 and 10")

	// ErrInvalidTodoFilter is returned when the list filter is unknown.
	ErrInvalidTodoFilter = errors.New("invalid todo filter")
)

// TodoErrorCode defines error codes for todo errors.
// Format: TOD-XXYYYY where XX is category and YYYY is specific error.
type TodoErrorCode string

const (
	ErrCodeTodoNotFound       TodoErrorCode = "TOD-010001"
	ErrCodeUnauthorizedTodo   TodoErrorCode = "TOD-010002"
	ErrCodeInvalidPriority    TodoErrorCode = "TOD-010003"
	ErrCodeInvalidTodoFilter  TodoErrorCode = "TOD-010004"
	ErrCodeMissingTodoFields  TodoErrorCode = "TOD-010005"
)

// TodoError represents a todo error with code and message.
type TodoError struct {
	Code    TodoErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TodoError) Unwrap() error {
	return e.Err
}

// NewTodoError creates a new TodoError with the given code and message.
func NewTodoError(code TodoErrorCode, message string, err error) *TodoError {
	return &TodoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
