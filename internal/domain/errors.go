package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
)

// RuleError is a named rejection with a client-facing message.
// It unwraps to one of the sentinel kinds so callers can branch on the kind
// (errors.Is(err, ErrConflict)) or on the exact rule (errors.Is(err, ErrGroupFull)).
type RuleError struct {
	Code    string
	Message string
	Kind    error
}

func (e *RuleError) Error() string { return e.Code + ": " + e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

// Append workflow and moderation rejections.
var (
	ErrMissingFields = &RuleError{Code: "missing_fields", Message: "Missing required fields", Kind: ErrValidation}

	ErrGroupNotFound = &RuleError{Code: "group_not_found", Message: "Group not found", Kind: ErrNotFound}
	ErrEntryNotFound = &RuleError{Code: "entry_not_found", Message: "Entry not found", Kind: ErrNotFound}

	ErrGroupAlreadyCompleted = &RuleError{Code: "group_already_completed", Message: "Group is already completed", Kind: ErrConflict}
	ErrGroupFull             = &RuleError{Code: "group_full", Message: "Group is full", Kind: ErrConflict}
	ErrInvalidAppend         = &RuleError{Code: "invalid_append", Message: "You can only append text, not modify previous content", Kind: ErrConflict}

	ErrInvalidCredentials = &RuleError{Code: "invalid_credentials", Message: "Invalid credentials", Kind: ErrUnauthorized}
	ErrWrongPassword      = &RuleError{Code: "wrong_password", Message: "Current password is incorrect", Kind: ErrUnauthorized}
	ErrSessionNotFound    = &RuleError{Code: "session_not_found", Message: "Unauthorized. Please login.", Kind: ErrUnauthorized}
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FirstMessage returns the message of the first field error, or "" if there are none.
func (e *ValidationError) FirstMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
