package seal

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Key sizes in bytes.
const (
	MasterKeySize    = 32
	SymmetricKeySize = 64
)

// SymmetricKey is an encryption key paired with a MAC key.
type SymmetricKey struct {
	Enc []byte
	Mac []byte
}

// NewSymmetricKey splits a 64-byte key into its encryption and MAC halves.
func NewSymmetricKey(key []byte) (SymmetricKey, error) {
	if len(key) != SymmetricKeySize {
		return SymmetricKey{}, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, SymmetricKeySize, len(key))
	}
	return SymmetricKey{
		Enc: append([]byte(nil), key[:32]...),
		Mac: append([]byte(nil), key[32:]...),
	}, nil
}

// Bytes returns the 64-byte enc||mac form.
func (k SymmetricKey) Bytes() []byte {
	out := make([]byte, 0, SymmetricKeySize)
	out = append(out, k.Enc...)
	return append(out, k.Mac...)
}

// StretchKey expands a 32-byte master key into a SymmetricKey using
// HKDF-Expand-SHA256 with info "enc" and "mac".
func StretchKey(master []byte) (SymmetricKey, error) {
	if len(master) != MasterKeySize {
		return SymmetricKey{}, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, MasterKeySize, len(master))
	}

	enc, err := expand(master, "enc")
	if err != nil {
		return SymmetricKey{}, err
	}
	mac, err := expand(master, "mac")
	if err != nil {
		return SymmetricKey{}, err
	}
	return SymmetricKey{Enc: enc, Mac: mac}, nil
}

func expand(prk []byte, info string) ([]byte, error) {
	out := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("failed to expand key: %w", err)
	}
	return out, nil
}
