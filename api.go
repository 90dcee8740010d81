// Package cipherstring validates compact encrypted-string envelopes.
//
// An envelope carries ciphertext as a plain string inside a larger document:
//
//	2.aXY=|Y3Q=|bWFj                     headered, numeric tag
//	AesCbc256_HmacSha256_B64.aXY=|...    headered, symbolic name
//	aXY=|Y3Q=|bWFj                       legacy, no header
//
// The header before the first "." declares the Scheme; the body is a
// "|"-separated list of standard base64 segments (iv, ciphertext, mac, ...).
// Validate checks shape only. Each segment must be strict standard base64
// that decodes to at least one byte, and the count must match the scheme.
// Nothing is decrypted and no MAC is verified.
//
// # Validation
//
//	res := cipherstring.Validate(value)
//	if !res.OK() {
//	    return res.Err() // *EnvelopeError, errors.Is(err, ErrEmptySegment), ...
//	}
//
// Validate does not allocate and is safe for concurrent use.
//
// # Schemes
//
//	0 AesCbc256_B64                       1 segment
//	1 AesCbc128_HmacSha256_B64            3 segments
//	2 AesCbc256_HmacSha256_B64            3 segments
//	3 Rsa2048_OaepSha256_B64              1 segment
//	4 Rsa2048_OaepSha1_B64                1 segment
//	5 Rsa2048_OaepSha256_HmacSha256_B64   2 segments
//	6 Rsa2048_OaepSha1_HmacSha256_B64     2 segments
//
// Headerless envelopes are inferred: three segments is scheme 1, anything
// else scheme 0.
//
// # Processor
//
// Processor gates struct fields tagged as envelopes at the boundaries where
// documents are received, loaded or stored:
//
//	type Cipher struct {
//	    ID    string   `json:"id"`
//	    Name  string   `json:"name" envelope:"required"`
//	    Notes *string  `json:"notes" envelope:"optional"`
//	    Key   string   `json:"key" envelope:"required,asymmetric"`
//	}
//
//	func (c Cipher) Clone() Cipher { return c }
//
//	proc, _ := cipherstring.NewProcessor[Cipher](json.New())
//	cipher, err := proc.Receive(ctx, requestBody)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Envelopes can be produced and opened with the seal subpackage, and
// registered with third-party validators through the binding subpackage.
package cipherstring

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// For simple value types with no pointers, slices, or maps, Clone can simply
// return the receiver value:
//
//	func (c Cipher) Clone() Cipher { return c }
type Cloner[T any] interface {
	Clone() T
}

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Field is one envelope value reported by a Verifiable type.
type Field struct {
	Name  string // Field path used in errors
	Value string
	Rule  Rule
}

// Verifiable bypasses reflection for envelope verification.
// When a type implements it, the Processor verifies exactly the fields it
// returns instead of scanning struct tags. Useful for hot paths and for
// code generators.
type Verifiable interface {
	EnvelopeFields() []Field
}
