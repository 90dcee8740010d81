package seal

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // OAEP-SHA1 is a supported wire scheme
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zoobzio/cipherstring"
)

// rsaOaep implements the MAC-less RSA-OAEP schemes.
type rsaOaep struct {
	scheme  cipherstring.Scheme
	newHash func() hash.Hash
	pub     *rsa.PublicKey
	priv    *rsa.PrivateKey
}

// RSA returns a Sealer for RsaOaepSha256 or RsaOaepSha1.
// pub is required for Seal; priv is required for Open. Either can be nil if
// only one operation is needed. When only priv is given, its public half is
// used for Seal.
func RSA(scheme cipherstring.Scheme, pub *rsa.PublicKey, priv *rsa.PrivateKey) (Sealer, error) {
	var h func() hash.Hash
	switch scheme {
	case cipherstring.RsaOaepSha256:
		h = sha256.New
	case cipherstring.RsaOaepSha1:
		h = sha1.New
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}

	if pub == nil && priv != nil {
		pub = &priv.PublicKey
	}
	return &rsaOaep{scheme: scheme, newHash: h, pub: pub, priv: priv}, nil
}

func (s *rsaOaep) Scheme() cipherstring.Scheme {
	return s.scheme
}

func (s *rsaOaep) Seal(plaintext []byte) (string, error) {
	if s.pub == nil {
		return "", fmt.Errorf("%w: public key required for sealing", ErrMissingKey)
	}

	ct, err := rsa.EncryptOAEP(s.newHash(), rand.Reader, s.pub, plaintext, nil)
	if err != nil {
		return "", err
	}
	return cipherstring.Format(s.scheme, ct), nil
}

func (s *rsaOaep) Open(envelope string) ([]byte, error) {
	if s.priv == nil {
		return nil, fmt.Errorf("%w: private key required for opening", ErrMissingKey)
	}

	env, err := cipherstring.Parse(envelope)
	if err != nil {
		return nil, err
	}
	if env.Scheme != s.scheme {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, env.Scheme)
	}

	ct, err := cipherstring.DecodeSegment(env.Segments[0])
	if err != nil {
		return nil, err
	}
	pt, err := rsa.DecryptOAEP(s.newHash(), rand.Reader, s.priv, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return pt, nil
}
