package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/zoobzio/cipherstring"
)

// Sealer encrypts plaintext into an envelope and opens envelopes it produced.
type Sealer interface {
	// Scheme returns the scheme written by Seal.
	Scheme() cipherstring.Scheme

	// Seal encrypts plaintext and returns a headered envelope.
	Seal(plaintext []byte) (string, error)

	// Open validates and decrypts an envelope.
	Open(envelope string) ([]byte, error)
}

// aesCbcHmac implements AES-256-CBC with HMAC-SHA256.
type aesCbcHmac struct {
	block  cipher.Block
	macKey []byte
}

// AesCbcHmac returns a Sealer for AesCbc256HmacSha256.
// Key must be a 32-byte master key, which is stretched, or a 64-byte
// enc||mac key.
func AesCbcHmac(key []byte) (Sealer, error) {
	var sk SymmetricKey
	var err error
	switch len(key) {
	case MasterKeySize:
		sk, err = StretchKey(key)
	case SymmetricKeySize:
		sk, err = NewSymmetricKey(key)
	default:
		return nil, fmt.Errorf("%w: must be %d or %d bytes, got %d", ErrInvalidKeySize, MasterKeySize, SymmetricKeySize, len(key))
	}
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(sk.Enc)
	if err != nil {
		return nil, err
	}
	return &aesCbcHmac{block: block, macKey: sk.Mac}, nil
}

func (s *aesCbcHmac) Scheme() cipherstring.Scheme {
	return cipherstring.AesCbc256HmacSha256
}

func (s *aesCbcHmac) Seal(plaintext []byte) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	ct := pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(s.block, iv).CryptBlocks(ct, ct)

	return cipherstring.Format(s.Scheme(), iv, ct, s.mac(iv, ct)), nil
}

func (s *aesCbcHmac) Open(envelope string) ([]byte, error) {
	env, err := cipherstring.Parse(envelope)
	if err != nil {
		return nil, err
	}
	if env.Scheme != s.Scheme() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, env.Scheme)
	}

	parts, err := decodeAll(env.Segments)
	if err != nil {
		return nil, err
	}
	iv, ct, mac := parts[0], parts[1], parts[2]

	if !hmac.Equal(mac, s.mac(iv, ct)) {
		return nil, ErrMacMismatch
	}
	if len(iv) != aes.BlockSize || len(ct)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(s.block, iv).CryptBlocks(pt, ct)
	return unpad(pt, aes.BlockSize)
}

// mac computes HMAC-SHA256 over iv||ct.
func (s *aesCbcHmac) mac(iv, ct []byte) []byte {
	h := hmac.New(sha256.New, s.macKey)
	h.Write(iv)
	h.Write(ct)
	return h.Sum(nil)
}

// pad returns a copy of b with PKCS#7 padding appended.
func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad strips PKCS#7 padding.
func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, ErrInvalidPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrInvalidPadding
		}
	}
	return b[:len(b)-n], nil
}

// decodeAll decodes every segment of a validated envelope.
func decodeAll(segments []string) ([][]byte, error) {
	out := make([][]byte, len(segments))
	for i, seg := range segments {
		b, err := cipherstring.DecodeSegment(seg)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
