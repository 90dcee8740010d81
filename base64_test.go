package cipherstring

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodedLen(t *testing.T) {
	tests := []struct {
		name   string
		seg    string
		wantN  int
		wantOK bool
	}{
		{"empty", "", 0, true},
		{"one byte", "QQ==", 1, true},
		{"two bytes", "QUE=", 2, true},
		{"three bytes", "QUFB", 3, true},
		{"plus and slash", "+/+/", 3, true},
		{"unpadded", "QQ", 0, false},
		{"url alphabet", "-_-_", 0, false},
		{"non-canonical trailing bits", "QR==", 0, false},
		{"padding in middle", "QQ==QUFB", 0, false},
		{"newlines", "QUFB\n\n\n\nQUFB", 0, false},
		{"carriage returns", "QUFB\r\n\r\nQUFB", 0, false},
		{"space", "QU FB", 0, false},
		{"at sign", "@@@@", 0, false},
		{"non-ascii", "QUé=", 0, false},
		{"only padding", "====", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := decodedLen(tt.seg)
			if ok != tt.wantOK {
				t.Fatalf("decodedLen(%q) ok = %v, want %v", tt.seg, ok, tt.wantOK)
			}
			if ok && n != tt.wantN {
				t.Errorf("decodedLen(%q) = %d, want %d", tt.seg, n, tt.wantN)
			}
		})
	}
}

func TestDecodedLen_Long(t *testing.T) {
	for _, size := range []int{383, 384, 385, 1000, 4096} {
		raw := bytes.Repeat([]byte{0xAB}, size)
		n, ok := decodedLen(EncodeSegment(raw))
		if !ok || n != size {
			t.Errorf("decodedLen(%d bytes) = (%d, %v)", size, n, ok)
		}
	}
}

func TestDecodedLen_PaddingAtChunkBoundary(t *testing.T) {
	// A padded quantum ending exactly at the first chunk boundary followed
	// by more data.
	seg := strings.Repeat("QUFB", decodeChunk/4-1) + "QQ==" + "QUFB"
	if _, ok := decodedLen(seg); ok {
		t.Error("decodedLen() should reject padding before the final quantum")
	}
}

func TestDecodedLen_NoAlloc(t *testing.T) {
	seg := EncodeSegment(bytes.Repeat([]byte{1}, 2000))
	allocs := testing.AllocsPerRun(50, func() {
		_, _ = decodedLen(seg)
	})
	if allocs != 0 {
		t.Errorf("decodedLen allocated %v times, want 0", allocs)
	}
}

func TestDecodeSegment(t *testing.T) {
	got, err := DecodeSegment("aXY=")
	if err != nil {
		t.Fatalf("DecodeSegment() error: %v", err)
	}
	if string(got) != "iv" {
		t.Errorf("DecodeSegment() = %q, want %q", got, "iv")
	}

	if _, err := DecodeSegment("aXY\n"); !errors.Is(err, ErrMalformedBase64) {
		t.Errorf("DecodeSegment(newline) error = %v, want ErrMalformedBase64", err)
	}
}

func TestEncodeSegment_RoundTrip(t *testing.T) {
	raw := []byte{0, 1, 2, 0xfe, 0xff}
	got, err := DecodeSegment(EncodeSegment(raw))
	if err != nil {
		t.Fatalf("DecodeSegment() error: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("round trip = %v, want %v", got, raw)
	}
}
