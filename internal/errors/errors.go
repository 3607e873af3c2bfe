// Package errors provides coded errors for the service layer. Domain
// packages return the sentinel errors from package internal; services wrap
// them here so callers can branch on a Code without knowing the sentinel.
package errors

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/skirmish/internal"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a dependency (usually the dice source) failed transiently
	CodeUnavailable Code = "unavailable"

	// CodeCanceled indicates the caller gave up
	CodeCanceled Code = "canceled"

	// CodeValidation indicates a validation error
	CodeValidation Code = "validation"
)

// Error represents an application error with code and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context. An existing code is kept;
// otherwise the code is derived from the domain sentinel in the chain.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var skErr *Error
	if errors.As(err, &skErr) {
		return &Error{
			Code:    skErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(skErr.Meta),
		}
	}

	return &Error{
		Code:    classify(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func classify(err error) Code {
	switch {
	case errors.Is(err, internal.ErrTransientDice):
		return CodeUnavailable
	case errors.Is(err, internal.ErrStatBuild):
		return CodeValidation
	case errors.Is(err, internal.ErrUnknownStance),
		errors.Is(err, internal.ErrInvalidParam),
		errors.Is(err, internal.ErrMissingParam):
		return CodeInvalidArgument
	case errors.Is(err, internal.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, internal.ErrExists):
		return CodeAlreadyExists
	case errors.Is(err, internal.ErrInitiativeDeadlock),
		errors.Is(err, internal.ErrTurnLimit):
		return CodeInternal
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	}
	return CodeUnknown
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var skErr *Error
	if errors.As(err, &skErr) {
		return skErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// IsUnavailable checks if the error is a transient dependency failure
func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var skErr *Error
	if errors.As(err, &skErr) {
		return skErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var skErr *Error
	if errors.As(err, &skErr) {
		return skErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
