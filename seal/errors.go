package seal

import "errors"

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidKeySize indicates a key of the wrong length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrUnsupportedScheme indicates an envelope whose scheme this sealer
	// cannot open.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrMacMismatch indicates the envelope MAC does not verify.
	ErrMacMismatch = errors.New("mac mismatch")

	// ErrDecryptionFailed indicates the ciphertext could not be decrypted.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPadding indicates malformed PKCS#7 padding after decryption.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrMissingKey indicates the operation needs a key the sealer was not
	// given.
	ErrMissingKey = errors.New("missing key")
)
