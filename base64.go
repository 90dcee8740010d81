package cipherstring

import "encoding/base64"

// strictEncoding is standard base64 with required padding and canonical
// trailing bits.
var strictEncoding = base64.StdEncoding.Strict()

// decodeChunk is the number of encoded characters decoded per step. It is a
// multiple of 4 so padding can only appear in the final chunk.
const decodeChunk = 512

// decodedLen reports the decoded size of a base64 segment without heap
// allocation. ok is false when seg is not strict standard base64.
//
// The decoder in encoding/base64 silently skips CR and LF; those are rejected
// here first so a segment is accepted only if every byte is part of the
// encoding.
func decodedLen(seg string) (n int, ok bool) {
	if len(seg)%4 != 0 {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\r' || seg[i] == '\n' {
			return 0, false
		}
	}

	var (
		src [decodeChunk]byte
		dst [decodeChunk / 4 * 3]byte
	)
	for len(seg) > 0 {
		c := copy(src[:], seg)
		seg = seg[c:]
		if len(seg) > 0 {
			// Padding is only legal in the last quantum.
			for _, b := range src[c-4 : c] {
				if b == '=' {
					return 0, false
				}
			}
		}
		m, err := strictEncoding.Decode(dst[:], src[:c])
		if err != nil {
			return 0, false
		}
		n += m
	}
	return n, true
}

// DecodeSegment decodes a single envelope segment with the same strict rules
// the validator applies. It allocates the returned slice.
func DecodeSegment(seg string) ([]byte, error) {
	if _, ok := decodedLen(seg); !ok {
		return nil, ErrMalformedBase64
	}
	return strictEncoding.DecodeString(seg)
}

// EncodeSegment encodes raw bytes as an envelope segment.
func EncodeSegment(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
