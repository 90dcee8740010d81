package seal

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestStretchKey(t *testing.T) {
	master := bytes.Repeat([]byte{0x42}, MasterKeySize)

	k1, err := StretchKey(master)
	if err != nil {
		t.Fatalf("StretchKey() error: %v", err)
	}
	k2, _ := StretchKey(master)

	if len(k1.Enc) != 32 || len(k1.Mac) != 32 {
		t.Fatalf("key sizes = %d/%d, want 32/32", len(k1.Enc), len(k1.Mac))
	}
	if !bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Error("StretchKey() should be deterministic")
	}
	if bytes.Equal(k1.Enc, k1.Mac) {
		t.Error("enc and mac halves should differ")
	}
}

func TestStretchKey_KnownVector(t *testing.T) {
	// HKDF-Expand-SHA256 with a single output block is HMAC(prk, info||0x01).
	master := make([]byte, MasterKeySize)
	k, err := StretchKey(master)
	if err != nil {
		t.Fatalf("StretchKey() error: %v", err)
	}
	want := hmacSHA256(master, []byte("enc\x01"))
	if !bytes.Equal(k.Enc, want) {
		t.Errorf("Enc = %s, want %s", hex.EncodeToString(k.Enc), hex.EncodeToString(want))
	}
}

func TestStretchKey_InvalidSize(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		if _, err := StretchKey(make([]byte, n)); !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("StretchKey(%d bytes) error = %v, want ErrInvalidKeySize", n, err)
		}
	}
}

func TestNewSymmetricKey(t *testing.T) {
	raw := make([]byte, SymmetricKeySize)
	for i := range raw {
		raw[i] = byte(i)
	}

	k, err := NewSymmetricKey(raw)
	if err != nil {
		t.Fatalf("NewSymmetricKey() error: %v", err)
	}
	if k.Enc[0] != 0 || k.Mac[0] != 32 {
		t.Errorf("split at wrong offset: enc[0]=%d mac[0]=%d", k.Enc[0], k.Mac[0])
	}
	if !bytes.Equal(k.Bytes(), raw) {
		t.Error("Bytes() should reassemble the original key")
	}

	raw[0] = 0xff
	if k.Enc[0] != 0 {
		t.Error("NewSymmetricKey() should copy its input")
	}

	if _, err := NewSymmetricKey(raw[:32]); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("NewSymmetricKey(32 bytes) error = %v, want ErrInvalidKeySize", err)
	}
}
