package cipherstring

import (
	"strconv"
	"strings"
	"unicode"
)

// Reason classifies a validation failure. ReasonNone means the value is valid.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonEmptyInput
	ReasonUnknownScheme
	ReasonSegmentCountMismatch
	ReasonMalformedBase64
	ReasonEmptySegment
)

// reasonErrors maps each failure reason to its sentinel.
var reasonErrors = [...]error{
	ReasonNone:                 nil,
	ReasonEmptyInput:           ErrEmptyInput,
	ReasonUnknownScheme:        ErrUnknownScheme,
	ReasonSegmentCountMismatch: ErrSegmentCountMismatch,
	ReasonMalformedBase64:      ErrMalformedBase64,
	ReasonEmptySegment:         ErrEmptySegment,
}

// String returns a short snake_case name, suitable for event fields.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case ReasonEmptyInput:
		return "empty_input"
	case ReasonUnknownScheme:
		return "unknown_scheme"
	case ReasonSegmentCountMismatch:
		return "segment_count_mismatch"
	case ReasonMalformedBase64:
		return "malformed_base64"
	case ReasonEmptySegment:
		return "empty_segment"
	}
	return "Reason(" + strconv.Itoa(int(r)) + ")"
}

// Result is the outcome of validating one value.
//
// Expected and Actual are set for ReasonSegmentCountMismatch; Segment is the
// zero-based index of the offending segment for ReasonMalformedBase64 and
// ReasonEmptySegment. Scheme is meaningful once a scheme has been resolved
// or inferred.
type Result struct {
	Reason   Reason
	Scheme   Scheme
	Headered bool
	Expected int
	Actual   int
	Segment  int
}

// OK reports whether the value was a well-formed envelope.
func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

// Err converts an invalid result into an *EnvelopeError. It returns nil for a
// valid result.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &EnvelopeError{
		Err:      reasonErrors[r.Reason],
		Scheme:   r.Scheme,
		Expected: r.Expected,
		Actual:   r.Actual,
		Segment:  r.Segment,
	}
}

func (r Result) String() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return "valid " + r.Scheme.String()
}

// Validate reports whether s is a structurally well-formed envelope for its
// declared scheme. It never decrypts and does not allocate.
func Validate(s string) Result {
	if isBlank(s) {
		return Result{Reason: ReasonEmptyInput}
	}

	var res Result
	header, body, ok := SplitOnce(s, headerSep)
	if ok {
		scheme, err := Resolve(header)
		if err != nil {
			return Result{Reason: ReasonUnknownScheme, Headered: true}
		}
		res.Scheme = scheme
		res.Headered = true
	}

	count := countSegments(body)
	if !res.Headered {
		res.Scheme = InferLegacy(count)
	}

	if want := res.Scheme.Segments(); count != want {
		res.Reason = ReasonSegmentCountMismatch
		res.Expected = want
		res.Actual = count
		return res
	}

	rest := body
	for i := 0; i < count; i++ {
		var seg string
		seg, rest, _ = nextSegment(rest)
		n, ok := decodedLen(seg)
		if !ok {
			res.Reason = ReasonMalformedBase64
			res.Segment = i
			return res
		}
		if n < 1 {
			res.Reason = ReasonEmptySegment
			res.Segment = i
			return res
		}
	}
	return res
}

// IsValid is shorthand for Validate(s).OK().
func IsValid(s string) bool {
	return Validate(s).OK()
}

// Envelope is the parsed view of one envelope string. Segments are
// substrings of the parsed input.
type Envelope struct {
	Scheme   Scheme
	Segments []string
	Headered bool
}

// Parse validates s and returns its parsed view. The returned error is an
// *EnvelopeError when s is not well-formed.
func Parse(s string) (Envelope, error) {
	res := Validate(s)
	if !res.OK() {
		return Envelope{}, res.Err()
	}

	body := s
	if res.Headered {
		_, body, _ = SplitOnce(s, headerSep)
	}
	env := Envelope{
		Scheme:   res.Scheme,
		Segments: strings.Split(body, string(segmentSep)),
		Headered: res.Headered,
	}
	return env, nil
}

// String renders the envelope in its compact headered form. Legacy
// envelopes are rendered without a header.
func (e Envelope) String() string {
	body := strings.Join(e.Segments, string(segmentSep))
	if !e.Headered {
		return body
	}
	return e.Scheme.Tag() + string(headerSep) + body
}

// Format assembles a headered envelope from raw segment bytes.
func Format(scheme Scheme, segments ...[]byte) string {
	var b strings.Builder
	b.WriteString(scheme.Tag())
	b.WriteByte(headerSep)
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte(segmentSep)
		}
		b.WriteString(EncodeSegment(seg))
	}
	return b.String()
}

// isBlank reports whether s is empty or only Unicode whitespace.
func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
