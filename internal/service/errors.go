package service

import "fmt"

// ValidationError indicates a request payload failed domain validation.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// GenerationError wraps a failure from the narrative generator so handlers
// can map it to an upstream-failure response.
type GenerationError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap exposes the underlying cause.
func (e GenerationError) Unwrap() error {
	return e.Cause
}
