// Package bson provides a BSON codec implementation.
package bson

import (
	"bytes"

	"github.com/zoobzio/cipherstring"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// bsonCodec implements cipherstring.Codec for BSON.
type bsonCodec struct {
	jsonTags bool
}

// New returns a BSON codec.
func New() cipherstring.Codec {
	return &bsonCodec{}
}

// WithJSONTags returns a BSON codec that reads field names from json struct
// tags, so one vault type can be stored in a document database and served
// over HTTP without a second set of tags.
func WithJSONTags() cipherstring.Codec {
	return &bsonCodec{jsonTags: true}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if !c.jsonTags {
		return bson.Marshal(v)
	}

	var buf bytes.Buffer
	vw, err := bsonrw.NewBSONValueWriter(&buf)
	if err != nil {
		return nil, err
	}
	enc, err := bson.NewEncoder(vw)
	if err != nil {
		return nil, err
	}
	enc.UseJSONStructTags()
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	if !c.jsonTags {
		return bson.Unmarshal(data, v)
	}

	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.UseJSONStructTags()
	return dec.Decode(v)
}
