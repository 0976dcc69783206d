// internal/pipeline/errors.go
package pipeline

import (
	"errors"
	"fmt"
)

// Common pipeline errors
var (
	ErrMissingInput   = errors.New("required input artifact not found")
	ErrNoResults      = errors.New("no results extracted")
	ErrSessionFailed  = errors.New("browser session failed")
	ErrStageCancelled = errors.New("stage cancelled")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeMissingInput ErrorCode = "MISSING_PRECONDITION"
	ErrCodeSession      ErrorCode = "SESSION"
	ErrCodeNavigation   ErrorCode = "NAVIGATION"
	ErrCodeExtraction   ErrorCode = "EXTRACTION"
	ErrCodeNoResults    ErrorCode = "NO_RESULTS"
	ErrCodeArtifact     ErrorCode = "ARTIFACT"
	ErrCodeConfig       ErrorCode = "CONFIG"
)

// StageError wraps errors with the stage they happened in
type StageError struct {
	Code       ErrorCode
	Stage      string
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *StageError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Stage, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Stage, e.Message)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *StageError) Is(target error) bool {
	if t, ok := target.(*StageError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewStageError creates a new StageError
func NewStageError(code ErrorCode, stage, message string, err error) *StageError {
	return &StageError{
		Code:       code,
		Stage:      stage,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *StageError) WithDetail(key string, value interface{}) *StageError {
	e.Details[key] = value
	return e
}
