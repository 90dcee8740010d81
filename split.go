package cipherstring

import (
	"bytes"
	"strings"
)

// SplitOnce splits s around the first occurrence of sep.
//
// The returned parts are substrings of s; nothing is copied. When sep is
// absent, or is the first byte of s, no split happens: ok is false, before is
// empty and after is s unchanged. A leading separator never yields a header.
func SplitOnce(s string, sep byte) (before, after string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 1 {
		return "", s, false
	}
	return s[:i], s[i+1:], true
}

// SplitOnceBytes is SplitOnce for byte slices. The returned slices alias b.
func SplitOnceBytes(b []byte, sep byte) (before, after []byte, ok bool) {
	i := bytes.IndexByte(b, sep)
	if i < 1 {
		return nil, b, false
	}
	return b[:i], b[i+1:], true
}

// nextSegment returns the segment at the front of body and the remainder.
// Unlike SplitOnce, an empty leading segment is a real segment here.
func nextSegment(body string) (seg, rest string, more bool) {
	i := strings.IndexByte(body, segmentSep)
	if i < 0 {
		return body, "", false
	}
	return body[:i], body[i+1:], true
}

// countSegments returns the number of segments in body.
func countSegments(body string) int {
	return strings.Count(body, string(segmentSep)) + 1
}
