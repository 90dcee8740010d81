package seal

import (
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDF derives a 32-byte master key from a password and salt.
type KDF interface {
	Derive(password, salt []byte) ([]byte, error)
}

// PBKDF2SHA256 derives keys with PBKDF2-HMAC-SHA256.
type PBKDF2SHA256 struct {
	Iterations int
}

// DefaultPBKDF2 returns the default PBKDF2 parameters.
func DefaultPBKDF2() PBKDF2SHA256 {
	return PBKDF2SHA256{Iterations: 600000}
}

// Derive implements KDF.
func (k PBKDF2SHA256) Derive(password, salt []byte) ([]byte, error) {
	if k.Iterations < 1 {
		return nil, errors.New("pbkdf2: iterations must be positive")
	}
	return pbkdf2.Key(password, salt, k.Iterations, MasterKeySize, sha256.New), nil
}

// Argon2id derives keys with Argon2id. The salt is hashed with SHA-256
// first, so any length of salt (an email address, say) is accepted.
type Argon2id struct {
	Iterations  uint32
	MemoryKiB   uint32
	Parallelism uint8
}

// DefaultArgon2id returns the default Argon2id parameters.
func DefaultArgon2id() Argon2id {
	return Argon2id{
		Iterations:  3,
		MemoryKiB:   64 * 1024, // 64 MiB
		Parallelism: 4,
	}
}

// Derive implements KDF.
func (k Argon2id) Derive(password, salt []byte) ([]byte, error) {
	if k.Iterations < 1 || k.MemoryKiB < 1 || k.Parallelism < 1 {
		return nil, errors.New("argon2id: parameters must be positive")
	}
	hashed := sha256.Sum256(salt)
	return argon2.IDKey(password, hashed[:], k.Iterations, k.MemoryKiB, k.Parallelism, MasterKeySize), nil
}

// DeriveMasterKey derives a master key with kdf. Use StretchKey on the
// result to get a key for AesCbcHmac, or pass it to AesCbcHmac directly.
func DeriveMasterKey(password, salt []byte, kdf KDF) ([]byte, error) {
	if kdf == nil {
		kdf = DefaultPBKDF2()
	}
	return kdf.Derive(password, salt)
}
