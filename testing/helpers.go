// Package testing provides fixtures for code that validates envelopes.
package testing

import (
	"bytes"
	"testing"

	"github.com/zoobzio/cipherstring"
	"github.com/zoobzio/cipherstring/seal"
)

// TestKey returns a fixed 64-byte enc+mac key for testing.
func TestKey() []byte {
	return bytes.Repeat([]byte("k"), seal.SymmetricKeySize)
}

// TestSealer returns an AesCbcHmac sealer keyed with TestKey.
func TestSealer(tb testing.TB) seal.Sealer {
	tb.Helper()
	s, err := seal.AesCbcHmac(TestKey())
	if err != nil {
		tb.Fatalf("AesCbcHmac() error: %v", err)
	}
	return s
}

// Seal encrypts plaintext with TestSealer.
func Seal(tb testing.TB, plaintext string) string {
	tb.Helper()
	env, err := TestSealer(tb).Seal([]byte(plaintext))
	if err != nil {
		tb.Fatalf("Seal() error: %v", err)
	}
	return env
}

// ValidEnvelopes returns one well-formed envelope per scheme, keyed by scheme.
// Segments are placeholders; they are structurally valid but not decryptable.
func ValidEnvelopes() map[cipherstring.Scheme]string {
	out := make(map[cipherstring.Scheme]string)
	for _, s := range cipherstring.Schemes() {
		segs := make([][]byte, s.Segments())
		for i := range segs {
			segs[i] = []byte{byte(s), byte(i), 0xff}
		}
		out[s] = cipherstring.Format(s, segs...)
	}
	return out
}

// Case is an envelope fixture with its expected outcome.
type Case struct {
	Name   string
	Value  string
	Reason cipherstring.Reason
}

// InvalidEnvelopes returns one failing fixture per reason.
func InvalidEnvelopes() []Case {
	return []Case{
		{Name: "empty", Value: "", Reason: cipherstring.ReasonEmptyInput},
		{Name: "blank", Value: " \t", Reason: cipherstring.ReasonEmptyInput},
		{Name: "unknown tag", Value: "9.QUFB", Reason: cipherstring.ReasonUnknownScheme},
		{Name: "unknown name", Value: "AesGcm.QUFB", Reason: cipherstring.ReasonUnknownScheme},
		{Name: "short", Value: "2.QUFB|QUFB", Reason: cipherstring.ReasonSegmentCountMismatch},
		{Name: "legacy pair", Value: "QUFB|QUFB", Reason: cipherstring.ReasonSegmentCountMismatch},
		{Name: "bad alphabet", Value: "2.QUFB|-_-_|QUFB", Reason: cipherstring.ReasonMalformedBase64},
		{Name: "plaintext", Value: "hunter2", Reason: cipherstring.ReasonMalformedBase64},
		{Name: "empty segment", Value: "2.QUFB||QUFB", Reason: cipherstring.ReasonEmptySegment},
	}
}

// Login holds the credentials of a Cipher.
type Login struct {
	Username string `json:"username" yaml:"username" msgpack:"username" bson:"username" xml:"username" envelope:"required,symmetric"`
	Password string `json:"password" yaml:"password" msgpack:"password" bson:"password" xml:"password" envelope:"required,symmetric"`
}

// Cipher is a vault item with envelope fields of every supported kind.
type Cipher struct {
	ID     string            `json:"id" yaml:"id" msgpack:"id" bson:"id" xml:"id"`
	Name   string            `json:"name" yaml:"name" msgpack:"name" bson:"name" xml:"name" envelope:"required"`
	Notes  *string           `json:"notes,omitempty" yaml:"notes,omitempty" msgpack:"notes,omitempty" bson:"notes,omitempty" xml:"notes,omitempty" envelope:"optional"`
	Login  *Login            `json:"login,omitempty" yaml:"login,omitempty" msgpack:"login,omitempty" bson:"login,omitempty" xml:"login,omitempty"`
	URIs   []string          `json:"uris" yaml:"uris" msgpack:"uris" bson:"uris" xml:"uri" envelope:"optional"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty" msgpack:"fields,omitempty" bson:"fields,omitempty" xml:"-" envelope:"optional"`
}

// Clone implements cipherstring.Cloner[Cipher].
func (c Cipher) Clone() Cipher {
	out := c
	if c.Notes != nil {
		n := *c.Notes
		out.Notes = &n
	}
	if c.Login != nil {
		l := *c.Login
		out.Login = &l
	}
	if c.URIs != nil {
		out.URIs = append([]string(nil), c.URIs...)
	}
	if c.Fields != nil {
		out.Fields = make(map[string]string, len(c.Fields))
		for k, v := range c.Fields {
			out.Fields[k] = v
		}
	}
	return out
}

// NewCipher returns a Cipher whose envelope fields are all sealed with
// TestSealer.
func NewCipher(tb testing.TB) *Cipher {
	tb.Helper()
	notes := Seal(tb, "notes")
	return &Cipher{
		ID:    "c1",
		Name:  Seal(tb, "bank"),
		Notes: &notes,
		Login: &Login{
			Username: Seal(tb, "alice"),
			Password: Seal(tb, "hunter2"),
		},
		URIs:   []string{Seal(tb, "https://bank.example"), Seal(tb, "https://login.bank.example")},
		Fields: map[string]string{"pin": Seal(tb, "1234")},
	}
}
