package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// SessionValidationError reports every structural problem found in a raw
// session payload. A payload that produces one never reaches the scorer.
type SessionValidationError struct {
	Violations []string
}

func (e *SessionValidationError) Error() string {
	return fmt.Sprintf("invalid session: %s", strings.Join(e.Violations, "; "))
}

// NewSessionValidationError creates a SessionValidationError from the
// accumulated violations
func NewSessionValidationError(violations []string) *SessionValidationError {
	return &SessionValidationError{Violations: violations}
}
