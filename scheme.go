package cipherstring

import "strconv"

// Envelope delimiters.
const (
	headerSep  byte = '.'
	segmentSep byte = '|'
)

// Scheme identifies the encryption configuration declared by an envelope
// header. The numeric values are the wire tags and must never change.
type Scheme uint8

const (
	// AesCbc256 is the legacy AES-256-CBC scheme without a MAC.
	AesCbc256 Scheme = 0

	// AesCbc128HmacSha256 is AES-128-CBC with an HMAC-SHA256 tag (iv|ct|mac).
	AesCbc128HmacSha256 Scheme = 1

	// AesCbc256HmacSha256 is AES-256-CBC with an HMAC-SHA256 tag (iv|ct|mac).
	AesCbc256HmacSha256 Scheme = 2

	// RsaOaepSha256 is RSA-2048 OAEP with SHA-256.
	RsaOaepSha256 Scheme = 3

	// RsaOaepSha1 is RSA-2048 OAEP with SHA-1.
	RsaOaepSha1 Scheme = 4

	// RsaOaepSha256HmacSha256 is RSA-2048 OAEP SHA-256 with a MAC (ct|mac).
	RsaOaepSha256HmacSha256 Scheme = 5

	// RsaOaepSha1HmacSha256 is RSA-2048 OAEP SHA-1 with a MAC (ct|mac).
	RsaOaepSha1HmacSha256 Scheme = 6
)

// schemeRule describes the fixed attributes of a scheme.
type schemeRule struct {
	name      string
	segments  int
	symmetric bool
}

// schemeRules is the single source of truth for segment counts.
// It is populated at init and never written afterwards.
var schemeRules = map[Scheme]schemeRule{
	AesCbc256:               {name: "AesCbc256_B64", segments: 1, symmetric: true},
	AesCbc128HmacSha256:     {name: "AesCbc128_HmacSha256_B64", segments: 3, symmetric: true},
	AesCbc256HmacSha256:     {name: "AesCbc256_HmacSha256_B64", segments: 3, symmetric: true},
	RsaOaepSha256:           {name: "Rsa2048_OaepSha256_B64", segments: 1},
	RsaOaepSha1:             {name: "Rsa2048_OaepSha1_B64", segments: 1},
	RsaOaepSha256HmacSha256: {name: "Rsa2048_OaepSha256_HmacSha256_B64", segments: 2},
	RsaOaepSha1HmacSha256:   {name: "Rsa2048_OaepSha1_HmacSha256_B64", segments: 2},
}

// schemesByName maps canonical names back to schemes.
var schemesByName = func() map[string]Scheme {
	m := make(map[string]Scheme, len(schemeRules))
	for s, r := range schemeRules {
		m[r.name] = s
	}
	return m
}()

// IsValid reports whether s is a known scheme.
func (s Scheme) IsValid() bool {
	_, ok := schemeRules[s]
	return ok
}

// Segments returns the number of body segments the scheme requires,
// or 0 for an unknown scheme.
func (s Scheme) Segments() int {
	return schemeRules[s].segments
}

// Symmetric reports whether s is one of the AES schemes.
func (s Scheme) Symmetric() bool {
	return schemeRules[s].symmetric
}

// String returns the canonical symbolic name accepted in headers.
func (s Scheme) String() string {
	if r, ok := schemeRules[s]; ok {
		return r.name
	}
	return "Scheme(" + strconv.Itoa(int(s)) + ")"
}

// Tag returns the compact numeric header for s.
func (s Scheme) Tag() string {
	return strconv.Itoa(int(s))
}

// Schemes returns every known scheme in tag order.
func Schemes() []Scheme {
	out := make([]Scheme, 0, len(schemeRules))
	for i := 0; i <= maxTag; i++ {
		if s := Scheme(i); s.IsValid() {
			out = append(out, s)
		}
	}
	return out
}

// Resolve maps an envelope header to its scheme.
//
// A header is first read as an unsigned 8-bit decimal tag; if that fails it
// is matched exactly, case-sensitively, against the canonical names. Both
// forms stay accepted because older envelopes carry the symbolic header.
func Resolve(header string) (Scheme, error) {
	if n, ok := parseTag(header); ok {
		s := Scheme(n)
		if !s.IsValid() {
			return 0, ErrUnknownScheme
		}
		return s, nil
	}
	if s, ok := schemesByName[header]; ok {
		return s, nil
	}
	return 0, ErrUnknownScheme
}

// maxTag is the largest value a numeric header can carry.
const maxTag = 255

// parseTag reads h as an unsigned decimal that fits in a byte. Signs,
// whitespace and empty input are rejected. Unlike strconv it does not
// allocate on failure.
func parseTag(h string) (uint8, bool) {
	if h == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(h); i++ {
		c := h[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > maxTag {
			return 0, false
		}
	}
	return uint8(n), true
}

// InferLegacy infers the scheme of a headerless envelope from its segment
// count. Three segments means AES-128-CBC with HMAC; anything else is taken
// as the MAC-less AES-256-CBC scheme.
func InferLegacy(segments int) Scheme {
	if segments == 3 {
		return AesCbc128HmacSha256
	}
	return AesCbc256
}
