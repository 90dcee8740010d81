// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/zoobzio/cipherstring"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements cipherstring.Codec for YAML.
type yamlCodec struct {
	strict bool
}

// New returns a YAML codec.
func New() cipherstring.Codec {
	return &yamlCodec{}
}

// Strict returns a YAML codec that rejects mapping keys with no matching
// struct field.
func Strict() cipherstring.Codec {
	return &yamlCodec{strict: true}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return yaml.Unmarshal(data, v)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
