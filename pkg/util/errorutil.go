package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to clients in the "error" field.
const (
	CodeNoTokenFound          = "no_token_found"
	CodeTokenExpired          = "token_expired"
	CodeInvalidToken          = "invalid_token"
	CodeInvalidTokenStructure = "invalid_token_structure"
	CodeServerConfigError     = "server_config_error"
	CodeValidationFailed      = "validation_failed"
	CodeNotFound              = "not_found"
	CodeForbidden             = "forbidden"
	CodeConflict              = "conflict"
	CodeStorageError          = "storage_error"
	CodeInternalError         = "internal_error"
)

// DomainError standardizes application errors. Code is the machine-readable
// string clients branch on; Message is human-readable.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFound(message string) error {
	return NewDomainError(CodeNotFound, message, http.StatusNotFound)
}

// NewUnauthorized builds a credential-shaped rejection with the given code.
func NewUnauthorized(code, message string) error {
	return NewDomainError(code, message, http.StatusUnauthorized)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden)
}

func NewConflict(message string) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict)
}

// NewServerConfigError signals operator misconfiguration rather than a caller
// mistake; always a 500.
func NewServerConfigError(message string) error {
	return NewDomainError(CodeServerConfigError, message, http.StatusInternalServerError)
}

// NewStorageError wraps an opaque failure from an external store.
func NewStorageError(err error) error {
	return &DomainError{
		Code:       CodeStorageError,
		Message:    "storage operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
