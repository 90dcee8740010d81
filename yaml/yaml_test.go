package yaml

import (
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
	ID     string `yaml:"id"`
	Secret string `yaml:"secret"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Fatal("New() should return non-nil codec")
	}
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
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
	if err := c.Unmarshal([]byte("secret: [unclosed"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestStrict_RejectsUnknownFields(t *testing.T) {
	c := Strict()

	var v struct {
		Name string `yaml:"name"`
	}
	err := c.Unmarshal([]byte("name: \"2.aXY=|Y3Q=|bWFj\"\nextra: true\n"), &v)
	if err == nil {
		t.Error("Strict().Unmarshal() should reject unknown fields")
	}
}

func TestStrict_EmptyDocument(t *testing.T) {
	c := Strict()

	var v struct {
		Name string `yaml:"name"`
	}
	if err := c.Unmarshal(nil, &v); err != nil {
		t.Errorf("Strict().Unmarshal(nil) error: %v", err)
	}
}
