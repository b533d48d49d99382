package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	Field         string `json:"field,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidationFailure = "VALIDATION_FAILURE"
	ErrCodeInvalidParameter  = "INVALID_PARAMETER"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-level failure that the caller can correct and resubmit.
// Field is set when a single input field caused the rejection.
type DomainError struct {
	Code    string
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, field, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// NewValidationFailure reports a malformed or missing input field.
func NewValidationFailure(field, message string) *DomainError {
	return NewDomainError(ErrCodeValidationFailure, field, message)
}

// NewInvalidParameter reports a business-rule violation on otherwise well-formed input.
func NewInvalidParameter(field, message string) *DomainError {
	return NewDomainError(ErrCodeInvalidParameter, field, message)
}

// NewNotFound reports a referenced entity that does not exist.
func NewNotFound(entity string, id int64) *DomainError {
	return NewDomainError(ErrCodeNotFound, "", fmt.Sprintf("%s %d not found", entity, id))
}

// IsValidationFailure reports whether err is a field validation failure.
func IsValidationFailure(err error) bool {
	return hasCode(err, ErrCodeValidationFailure)
}

// IsInvalidParameter reports whether err is a business-rule violation.
func IsInvalidParameter(err error) bool {
	return hasCode(err, ErrCodeInvalidParameter)
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func hasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

// StorageError reports a transaction that could not complete. When the rollback
// attempt failed as well, RollbackErr holds that failure.
type StorageError struct {
	Op          string
	Err         error
	RollbackErr error
}

func (e *StorageError) Error() string {
	if e.RollbackErr != nil {
		return fmt.Sprintf("%s: %v (rollback failed: %v)", e.Op, e.Err, e.RollbackErr)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.RollbackErr != nil {
		errs = append(errs, e.RollbackErr)
	}
	return errs
}

// RolledBack reports whether the failed transaction was rolled back cleanly.
func (e *StorageError) RolledBack() bool {
	return e.RollbackErr == nil
}

// IsStorageFailure reports whether err is a storage failure.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
