package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction-time errors (fail fast at call time)
const (
	// ErrCodeUnsupportedFormat indicates the requested codec format is not registered.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeModeMismatch indicates a codec's declared mode does not fit the requested wiring.
	ErrCodeModeMismatch ErrorCode = "MODE_MISMATCH"
	// ErrCodeInvalidInput indicates invalid options or configuration.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidTemplate indicates a malformed mapping template.
	ErrCodeInvalidTemplate ErrorCode = "INVALID_TEMPLATE"
)

// Data-time errors (surface through the stream error channel)
const (
	// ErrCodeMalformedInput indicates serialized input could not be decoded.
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"
	// ErrCodeStreamClosed indicates a write or push after the stream was closed.
	ErrCodeStreamClosed ErrorCode = "STREAM_CLOSED"
	// ErrCodeTransform indicates a user-supplied transform or predicate failed.
	ErrCodeTransform ErrorCode = "TRANSFORM_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected pipeline error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUnsupportedFormat: false,
	ErrCodeModeMismatch:      false,
	ErrCodeInvalidInput:      false,
	ErrCodeInvalidTemplate:   false,
	ErrCodeMalformedInput:    false,
	ErrCodeStreamClosed:      false,
	ErrCodeTransform:         false,
	ErrCodeInternal:          false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
