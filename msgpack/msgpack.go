// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/cipherstring"
)

// msgpackCodec implements cipherstring.Codec for MessagePack.
type msgpackCodec struct {
	tag string
}

// New returns a MessagePack codec using the msgpack struct tag.
func New() cipherstring.Codec {
	return &msgpackCodec{}
}

// WithJSONTags returns a MessagePack codec that reads field names from json
// struct tags, so one type can be shared with the JSON codec.
func WithJSONTags() cipherstring.Codec {
	return &msgpackCodec{tag: "json"}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	if c.tag == "" {
		return msgpack.Marshal(v)
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(c.tag)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	if c.tag == "" {
		return msgpack.Unmarshal(data, v)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(c.tag)
	return dec.Decode(v)
}
