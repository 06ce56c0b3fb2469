package recoverpg

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the recovery configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStorageError is returned when a snapshot store operation failed
	ErrStorageError = errors.New("storage operation failed")
)

// RecoveryError represents an error with additional context
type RecoveryError struct {
	Op         string         // Operation that failed
	Err        error          // Underlying error
	SessionKey string         // Session key if applicable
	Context    map[string]any // Additional context
}

// Error implements the error interface
func (e *RecoveryError) Error() string {
	if e.SessionKey != "" {
		return fmt.Sprintf("%s (session=%s): %v", e.Op, e.SessionKey, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RecoveryError) Unwrap() error {
	return e.Err
}

// WithContext adds additional context to the error
func (e *RecoveryError) WithContext(key string, value any) *RecoveryError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewRecoveryError creates a new RecoveryError
func NewRecoveryError(op string, err error) *RecoveryError {
	return &RecoveryError{
		Op:  op,
		Err: err,
	}
}

// NewRecoveryErrorWithSession creates a new RecoveryError with a session key
func NewRecoveryErrorWithSession(op string, sessionKey string, err error) *RecoveryError {
	return &RecoveryError{
		Op:         op,
		Err:        err,
		SessionKey: sessionKey,
	}
}
