package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
	ErrValidation ErrorCode = "VALIDATION_ERROR"

	// Exam generation specific errors
	ErrConfiguration    ErrorCode = "CONFIGURATION_ERROR"
	ErrModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"
	ErrMalformedOutput  ErrorCode = "MALFORMED_OUTPUT"
	ErrEmptyResult      ErrorCode = "EMPTY_RESULT"
)

// MaxRawExcerpt bounds how much of the model's raw output is carried on an
// error for diagnostics, so responses and logs never leak unbounded content.
const MaxRawExcerpt = 800

// DomainError represents a domain-specific error. Raw optionally carries a
// truncated excerpt of the model output that caused the failure.
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Raw     string    `json:"-"`
	Err     error     `json:"-"`
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

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors

func NewValidationError(message string) *DomainError {
	return NewError(ErrValidation, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewConfigurationError(message string) *DomainError {
	return NewError(ErrConfiguration, message, nil)
}

// NewModelUnavailableError signals that every configured model identifier
// failed at the transport layer; err is the last underlying failure.
func NewModelUnavailableError(err error) *DomainError {
	return NewError(ErrModelUnavailable, "all configured models failed", err)
}

// NewMalformedOutputError signals that no usable JSON could be recovered from
// the model output. raw is truncated to MaxRawExcerpt.
func NewMalformedOutputError(raw string, err error) *DomainError {
	e := NewError(ErrMalformedOutput, "model output is not recoverable JSON", err)
	e.Raw = TruncateRaw(raw)
	return e
}

// NewEmptyResultError signals that the recovered output yielded zero usable
// questions, which is a pipeline failure rather than a valid empty exam.
func NewEmptyResultError(raw string) *DomainError {
	e := NewError(ErrEmptyResult, "model output yielded no usable questions", nil)
	e.Raw = TruncateRaw(raw)
	return e
}

// TruncateRaw caps a raw model output excerpt at MaxRawExcerpt bytes.
func TruncateRaw(raw string) string {
	if len(raw) > MaxRawExcerpt {
		return raw[:MaxRawExcerpt]
	}
	return raw
}
