package cipherstring

import (
	"strconv"
	"strings"
)

const (
	// maskToken replaces every segment in a masked envelope.
	maskToken = "***"

	// maskLimit caps how many segments are rendered.
	maskLimit = 8
)

// Mask renders an envelope-shaped value without its ciphertext, for use in
// logs and error messages:
//
//	2.aXY=|Y3Q=|bWFj      -> 2.***|***|***
//	aXY=|Y3Q=             -> ***|***
//	bogus.aXY=            -> ***.***
//
// The header is kept only when it resolves to a known scheme. Empty input
// stays empty. Bodies with more than eight segments are truncated:
//
//	a|b|c|d|e|f|g|h|i|j   -> ***|***|***|***|***|***|***|***|+2
func Mask(value string) string {
	if value == "" {
		return ""
	}

	var b strings.Builder
	header, body, ok := SplitOnce(value, headerSep)
	if ok {
		if _, err := Resolve(header); err == nil {
			b.WriteString(header)
		} else {
			b.WriteString(maskToken)
		}
		b.WriteByte(headerSep)
	}

	n := countSegments(body)
	for i := 0; i < n && i < maskLimit; i++ {
		if i > 0 {
			b.WriteByte(segmentSep)
		}
		b.WriteString(maskToken)
	}
	if n > maskLimit {
		b.WriteString("|+")
		b.WriteString(strconv.Itoa(n - maskLimit))
	}
	return b.String()
}
