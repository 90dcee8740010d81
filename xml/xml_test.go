package xml

import (
	"strings"
	"testing"
)

// sample envelopes exercise the characters codecs tend to escape.
var samples = []string{
	"2.aXY+/w==|Y3Q=|bWFj",
	"Rsa2048_OaepSha256_HmacSha256_B64.Y3Q=|bWFj",
	"aXY=|Y3Q=|bWFj",
	"",
}

type record struct {
	ID     string `xml:"id"`
	Secret string `xml:"secret"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Fatal("New() should return non-nil codec")
	}
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestRoundTrip_Envelopes(t *testing.T) {
	c := New()

	for _, s := range samples {
		t.Run(s, func(t *testing.T) {
			data, err := c.Marshal(record{ID: "1", Secret: s})
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			var got record
			if err := c.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if got.Secret != s {
				t.Errorf("Secret = %q, want %q", got.Secret, s)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v record
	if err := c.Unmarshal([]byte("<record><secret>2.aXY=</record>"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestMarshal_EnvelopeCharactersUnescaped(t *testing.T) {
	c := New()

	data, err := c.Marshal(record{ID: "1", Secret: "2.aXY+/w==|Y3Q=|bWFj"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "<record><id>1</id><secret>2.aXY+/w==|Y3Q=|bWFj</secret></record>"
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestWithHeader(t *testing.T) {
	c := WithHeader()

	data, err := c.Marshal(record{ID: "1", Secret: "4.QUFB"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("Marshal() = %s, want XML declaration", data)
	}

	var got record
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Secret != "4.QUFB" {
		t.Errorf("Secret = %q", got.Secret)
	}
}
