package cipherstring

import (
	"errors"
	"testing"
)

func TestEnvelopeError_Is(t *testing.T) {
	err := error(&EnvelopeError{Err: ErrMalformedBase64, Segment: 2})

	if !errors.Is(err, ErrMalformedBase64) {
		t.Error("EnvelopeError should unwrap to ErrMalformedBase64")
	}
	if errors.Is(err, ErrEmptySegment) {
		t.Error("EnvelopeError should not match ErrEmptySegment")
	}
}

func TestEnvelopeError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "count mismatch",
			err:  &EnvelopeError{Err: ErrSegmentCountMismatch, Scheme: RsaOaepSha1HmacSha256, Expected: 2, Actual: 5},
			want: "segment count mismatch: Rsa2048_OaepSha1_HmacSha256_B64 requires 2, got 5",
		},
		{
			name: "empty segment",
			err:  &EnvelopeError{Err: ErrEmptySegment},
			want: "empty segment at index 0",
		},
		{
			name: "scheme not allowed",
			err:  &EnvelopeError{Err: ErrSchemeNotAllowed, Scheme: RsaOaepSha256},
			want: "scheme not allowed: Rsa2048_OaepSha256_B64",
		},
		{
			name: "unknown scheme",
			err:  &EnvelopeError{Err: ErrUnknownScheme},
			want: "unknown encryption scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newConfigError(ErrInvalidTag, "mandatory", "Name"),
			want: `invalid tag "mandatory" (field Name)`,
		},
		{
			name: "value only",
			err:  &ConfigError{Err: ErrInvalidTag, Value: "x"},
			want: `invalid tag "x"`,
		},
		{
			name: "field only",
			err:  &ConfigError{Err: ErrInvalidTag, Field: "Key"},
			want: `invalid tag (field Key)`,
		},
		{
			name: "bare",
			err:  &ConfigError{Err: ErrInvalidTag},
			want: `invalid tag`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrInvalidTag) {
				t.Error("ConfigError should unwrap to ErrInvalidTag")
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	cause := Validate("2.aXY=|Y3Q=").Err()
	err := error(newFieldError("Name", "2.aXY=|Y3Q=", cause))

	want := "field Name (2.***|***): segment count mismatch: AesCbc256_HmacSha256_B64 requires 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrSegmentCountMismatch) {
		t.Error("FieldError should match the envelope sentinel")
	}

	var envErr *EnvelopeError
	if !errors.As(err, &envErr) || envErr.Expected != 3 {
		t.Errorf("errors.As(*EnvelopeError) = %+v", envErr)
	}
}

func TestFieldError_EmptyShape(t *testing.T) {
	err := &FieldError{Field: "Name", Cause: ErrEmptyInput}
	if got := err.Error(); got != "field Name: empty envelope" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCodecError(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("unexpected EOF"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}
	if err.Error() != "unmarshal failed: unexpected EOF" {
		t.Errorf("Error() = %q", err.Error())
	}
	if got := (&CodecError{Err: ErrMarshal}).Error(); got != "marshal failed" {
		t.Errorf("Error() = %q", got)
	}
}
