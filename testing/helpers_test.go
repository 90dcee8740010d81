package testing

import (
	"testing"

	"github.com/zoobzio/cipherstring"
	"github.com/zoobzio/cipherstring/json"
)

func TestTestSealer(t *testing.T) {
	env := Seal(t, "x")
	pt, err := TestSealer(t).Open(env)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if string(pt) != "x" {
		t.Errorf("Open() = %q", pt)
	}
}

func TestValidEnvelopes(t *testing.T) {
	envs := ValidEnvelopes()
	if len(envs) != len(cipherstring.Schemes()) {
		t.Fatalf("len = %d, want one per scheme", len(envs))
	}
	for s, env := range envs {
		res := cipherstring.Validate(env)
		if !res.OK() || res.Scheme != s {
			t.Errorf("%s fixture %q: %v", s, env, res)
		}
	}
}

func TestInvalidEnvelopes(t *testing.T) {
	for _, c := range InvalidEnvelopes() {
		t.Run(c.Name, func(t *testing.T) {
			if got := cipherstring.Validate(c.Value).Reason; got != c.Reason {
				t.Errorf("Reason = %v, want %v", got, c.Reason)
			}
		})
	}
}

func TestNewCipher_Verifies(t *testing.T) {
	proc, err := cipherstring.NewProcessor[Cipher](json.New())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	if err := proc.Verify(t.Context(), NewCipher(t)); err != nil {
		t.Errorf("Verify() error: %v", err)
	}
}

func TestCipher_CloneIsDeep(t *testing.T) {
	c := NewCipher(t)
	clone := c.Clone()

	*clone.Notes = "changed"
	clone.Login.Username = "changed"
	clone.URIs[0] = "changed"
	clone.Fields["pin"] = "changed"

	if *c.Notes == "changed" || c.Login.Username == "changed" || c.URIs[0] == "changed" || c.Fields["pin"] == "changed" {
		t.Error("Clone() should not share references")
	}
}
