package crypto

import "errors"

var (
	// ErrDecryption is returned when a blob cannot be opened: wrong
	// passphrase, tampered or truncated ciphertext, or an envelope with an
	// unknown version or algorithm. It is never retried automatically.
	ErrDecryption = errors.New("decryption failed")

	// ErrMalformedState is returned when decryption succeeded but the
	// plaintext is not a well-formed sync snapshot.
	ErrMalformedState = errors.New("malformed sync state")

	// ErrInvalidSalt is returned when a salt of the wrong length is supplied
	// for encryption.
	ErrInvalidSalt = errors.New("invalid salt")
)
