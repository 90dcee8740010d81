// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/cipherstring"
)

// xmlCodec implements cipherstring.Codec for XML.
type xmlCodec struct {
	header bool
}

// New returns an XML codec.
func New() cipherstring.Codec {
	return &xmlCodec{}
}

// WithHeader returns an XML codec that prefixes every document with the
// standard XML declaration, as expected by vault export files.
func WithHeader() cipherstring.Codec {
	return &xmlCodec{header: true}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil || !c.header {
		return data, err
	}
	return append([]byte(xml.Header), data...), nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
