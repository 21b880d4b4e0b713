// Package errors provides unified error handling for recordkit.
// It implements structured error types with machine-readable codes,
// separating construction-time misconfiguration (fail fast) from data-time
// decode failures (surfaced through stream error channels).
package errors
