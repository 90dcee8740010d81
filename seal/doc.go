// Package seal produces and opens cipherstring envelopes.
//
// The cipherstring package only checks envelope shape. This package does the
// cryptography for the schemes it supports:
//
//	AesCbc256HmacSha256      AES-256-CBC, PKCS#7, HMAC-SHA256 over iv||ct
//	RsaOaepSha256            RSA-OAEP with SHA-256
//	RsaOaepSha1              RSA-OAEP with SHA-1
//
// A symmetric key is 64 bytes: a 32-byte encryption key followed by a 32-byte
// MAC key. A 32-byte master key is stretched into that form with StretchKey.
//
//	master, _ := seal.DeriveMasterKey(passphrase, []byte(email), seal.PBKDF2SHA256{Iterations: 600000})
//	s, _ := seal.AesCbcHmac(master)
//	env, _ := s.Seal([]byte("hunter2"))   // "2.<iv>|<ct>|<mac>"
//	pt, _ := s.Open(env)
//
// Open validates the envelope with cipherstring.Parse before touching key
// material, and compares MACs in constant time.
package seal
