package ui

import "errors"

// UI package errors.
var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("ui: invalid configuration")

	// ErrReadOnly indicates the UI is in read-only mode.
	ErrReadOnly = errors.New("ui: read-only mode")
)
