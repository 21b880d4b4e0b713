package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified recordkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf returns the ErrorCode of err if it is (or wraps) an AppError,
// and ErrCodeInternal otherwise.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// --- Common Error Constructors ---

// UnsupportedFormat creates a new AppError for a codec format that is not registered.
func UnsupportedFormat(format string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedFormat, Message: fmt.Sprintf("unsupported stream format: %s", format),
		Retryable: false,
		Details:   map[string]any{"format": format},
	}
}

// ModeMismatch creates a new AppError for a codec whose declared mode cannot serve the requested wiring.
func ModeMismatch(format, want, got string) *AppError {
	return &AppError{
		Code: ErrCodeModeMismatch, Message: fmt.Sprintf("codec %s operates in %s mode, %s mode required", format, got, want),
		Retryable: false,
		Details:   map[string]any{"format": format, "want": want, "got": got},
	}
}

// MalformedInput creates a new AppError for serialized input that failed to decode.
func MalformedInput(format string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeMalformedInput, Message: fmt.Sprintf("failed to decode %s input", format),
		Retryable: false,
		Details:   map[string]any{"format": format},
		Cause:     cause,
	}
}

// StreamClosed creates a new AppError for an operation on a closed stream.
func StreamClosed(operation string) *AppError {
	return &AppError{
		Code: ErrCodeStreamClosed, Message: fmt.Sprintf("%s on closed stream", operation),
		Retryable: false,
		Details:   map[string]any{"operation": operation},
	}
}

// Transform creates a new AppError for a user-supplied transform that failed.
func Transform(stage string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTransform, Message: fmt.Sprintf("%s transform failed", stage),
		Retryable: false,
		Details:   map[string]any{"stage": stage},
		Cause:     cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// InvalidTemplate creates a new AppError for a malformed mapping template.
func InvalidTemplate(field, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidTemplate, Message: fmt.Sprintf("invalid template field %s: %s", field, reason),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected pipeline error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected pipeline error occurred",
		Retryable: false, Cause: cause,
	}
}
