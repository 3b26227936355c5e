// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto turns a sync snapshot into an opaque encrypted blob and
// back. Nothing in this package knows about the network, storage or merge.
//
// Scheme:
//
//	Salt = GenerateSalt()                         (16 random bytes, reusable)
//	Key  = DeriveKey(passphrase, Salt)            (Argon2id, 256 bits)
//	IV   = 12 random bytes                        (fresh on every Encrypt)
//	Blob = {salt, iv, AES-GCM(Key, IV, JSON(doc))}
//
// Content files are sealed with the same Key as IV || AES-GCM(Key, IV, bytes).
package crypto

import "github.com/MKhiriev/readsync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encrypts and decrypts sync snapshots.
type Codec interface {
	// GenerateSalt returns 16 bytes from the OS CSPRNG. The salt is not a
	// secret; it travels inside every blob.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives the 256-bit AES key from passphrase and salt. The
	// result is deterministic for identical inputs.
	DeriveKey(passphrase string, salt []byte) []byte

	// Encrypt serialises doc, derives the key and seals the plaintext under a
	// fresh random IV.
	Encrypt(doc models.SyncStateDocument, passphrase string, salt []byte) (models.EncryptedBlob, error)

	// Decrypt opens blob with the key derived from passphrase and the salt
	// stored in the blob. It fails with ErrDecryption when the envelope is
	// unusable or authentication fails, and with ErrMalformedState when the
	// plaintext is not a valid snapshot.
	Decrypt(blob models.EncryptedBlob, passphrase string) (models.SyncStateDocument, error)

	// EncryptWithKey is Encrypt for callers that already derived the key.
	EncryptWithKey(doc models.SyncStateDocument, key, salt []byte) (models.EncryptedBlob, error)

	// DecryptWithKey is Decrypt for callers that already derived the key.
	DecryptWithKey(blob models.EncryptedBlob, key []byte) (models.SyncStateDocument, error)

	// SaltFromBlob decodes the salt stored in blob.
	SaltFromBlob(blob models.EncryptedBlob) ([]byte, error)

	// SealWithKey encrypts raw bytes under a fresh IV. The result is the IV
	// followed by the ciphertext and tag.
	SealWithKey(plaintext, key []byte) ([]byte, error)

	// OpenWithKey reverses SealWithKey. A truncated input or a failed tag
	// check yields ErrDecryption.
	OpenWithKey(sealed, key []byte) ([]byte, error)
}
