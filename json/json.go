// Package json provides a JSON codec implementation.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/cipherstring"
)

// jsonCodec implements cipherstring.Codec for JSON.
type jsonCodec struct {
	strict bool
}

// New returns a JSON codec.
func New() cipherstring.Codec {
	return &jsonCodec{}
}

// Strict returns a JSON codec that rejects unknown object keys and trailing
// data, for request bodies that must match the target type exactly.
func Strict() cipherstring.Codec {
	return &jsonCodec{strict: true}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return json.Unmarshal(data, v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}
