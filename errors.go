package cipherstring

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEmptyInput indicates the value is empty or only whitespace.
	ErrEmptyInput = errors.New("empty envelope")

	// ErrUnknownScheme indicates the header names no known scheme.
	ErrUnknownScheme = errors.New("unknown encryption scheme")

	// ErrSegmentCountMismatch indicates the body has the wrong number of segments.
	ErrSegmentCountMismatch = errors.New("segment count mismatch")

	// ErrMalformedBase64 indicates a segment is not strict standard base64.
	ErrMalformedBase64 = errors.New("malformed base64 segment")

	// ErrEmptySegment indicates a segment decodes to zero bytes.
	ErrEmptySegment = errors.New("empty segment")

	// ErrSchemeNotAllowed indicates a well-formed envelope whose scheme is
	// excluded by a field rule.
	ErrSchemeNotAllowed = errors.New("scheme not allowed")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// EnvelopeError describes why a value is not a well-formed envelope.
type EnvelopeError struct {
	Err      error  // Underlying sentinel error (ErrEmptyInput, etc.)
	Scheme   Scheme // Resolved or inferred scheme, when known
	Expected int    // Required segment count (ErrSegmentCountMismatch)
	Actual   int    // Observed segment count (ErrSegmentCountMismatch)
	Segment  int    // Zero-based segment index (ErrMalformedBase64, ErrEmptySegment)
}

func (e *EnvelopeError) Error() string {
	switch e.Err {
	case ErrSegmentCountMismatch:
		return fmt.Sprintf("%s: %s requires %d, got %d", e.Err.Error(), e.Scheme, e.Expected, e.Actual)
	case ErrMalformedBase64, ErrEmptySegment:
		return fmt.Sprintf("%s at index %d", e.Err.Error(), e.Segment)
	case ErrSchemeNotAllowed:
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Scheme)
	}
	return e.Err.Error()
}

func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Field string // Field name that triggered the error
	Value string // Offending tag value
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Value, e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FieldError reports an envelope field that failed verification.
// It unwraps to the *EnvelopeError, so errors.Is matches the envelope
// sentinels directly.
type FieldError struct {
	Field string // Field path, with [i] or [key] for collections
	Shape string // Masked rendering of the rejected value
	Cause error  // *EnvelopeError
}

func (e *FieldError) Error() string {
	if e.Shape != "" {
		return fmt.Sprintf("field %s (%s): %v", e.Field, e.Shape, e.Cause)
	}
	return fmt.Sprintf("field %s: %v", e.Field, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for invalid tag scenarios.
func newConfigError(sentinel error, value, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Value: value,
		Field: field,
	}
}

// newFieldError creates a FieldError for a rejected value.
func newFieldError(field, value string, cause error) *FieldError {
	return &FieldError{
		Field: field,
		Shape: Mask(value),
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
