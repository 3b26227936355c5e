// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/readsync/models"
)

const (
	saltSize = 16
	ivSize   = 12
)

// codec is the private implementation of [Codec].
type codec struct {
	// Argon2id parameters. They are part of the wire contract: a blob can
	// only be opened with the parameters it was sealed with.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	validate *validator.Validate
	now      func() time.Time
}

// NewCodec constructs a [Codec] with the fixed Argon2id parameters used by
// every blob this application has ever written:
//   - time cost:   3 iterations
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewCodec() Codec {
	return &codec{
		argonTime:    3,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		validate:     validator.New(),
		now:          time.Now,
	}
}

// GenerateSalt implements [Codec].
func (c *codec) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [Codec]. The passphrase is used as its UTF-8 bytes.
func (c *codec) DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// Encrypt implements [Codec].
func (c *codec) Encrypt(doc models.SyncStateDocument, passphrase string, salt []byte) (models.EncryptedBlob, error) {
	if len(salt) != saltSize {
		return models.EncryptedBlob{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), saltSize)
	}
	return c.EncryptWithKey(doc, c.DeriveKey(passphrase, salt), salt)
}

// EncryptWithKey implements [Codec].
func (c *codec) EncryptWithKey(doc models.SyncStateDocument, key, salt []byte) (models.EncryptedBlob, error) {
	if len(salt) != saltSize {
		return models.EncryptedBlob{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), saltSize)
	}

	// 1. Serialize to JSON
	plaintext, err := json.Marshal(doc)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("marshal sync state: %w", err)
	}

	// 2. Build AES-GCM cipher
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	// 3. Fresh IV for every call, even with the same key
	iv := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	// 4. Seal; the tag is appended to the ciphertext
	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	return models.EncryptedBlob{
		Version:     models.BlobVersion,
		Algorithm:   models.BlobAlgorithm,
		Salt:        base64.StdEncoding.EncodeToString(salt),
		IV:          base64.StdEncoding.EncodeToString(iv),
		Ciphertext:  base64.StdEncoding.EncodeToString(ciphertext),
		EncryptedAt: c.now().UnixMilli(),
	}, nil
}

// Decrypt implements [Codec].
func (c *codec) Decrypt(blob models.EncryptedBlob, passphrase string) (models.SyncStateDocument, error) {
	salt, err := c.SaltFromBlob(blob)
	if err != nil {
		return models.SyncStateDocument{}, err
	}
	return c.DecryptWithKey(blob, c.DeriveKey(passphrase, salt))
}

// DecryptWithKey implements [Codec].
func (c *codec) DecryptWithKey(blob models.EncryptedBlob, key []byte) (models.SyncStateDocument, error) {
	if err := c.validateEnvelope(blob); err != nil {
		return models.SyncStateDocument{}, err
	}

	// 1. Decode IV and ciphertext
	iv, err := base64.StdEncoding.DecodeString(blob.IV)
	if err != nil || len(iv) != ivSize {
		return models.SyncStateDocument{}, fmt.Errorf("%w: bad iv", ErrDecryption)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(blob.Ciphertext)
	if err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: decode ciphertext: %v", ErrDecryption, err)
	}

	// 2. Build AES-GCM cipher
	gcm, err := newGCM(key)
	if err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	// 3. Decrypt and verify the tag. A failure here almost always means a
	// wrong passphrase.
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	// 4. Parse the snapshot
	return parseSnapshot(plaintext)
}

// SaltFromBlob implements [Codec].
func (c *codec) SaltFromBlob(blob models.EncryptedBlob) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(blob.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrDecryption, err)
	}
	if len(salt) != saltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrDecryption, len(salt), saltSize)
	}
	return salt, nil
}

// SealWithKey implements [Codec].
func (c *codec) SealWithKey(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, gcm.NonceSize(), gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	return gcm.Seal(iv, iv, plaintext, nil), nil
}

// OpenWithKey implements [Codec].
func (c *codec) OpenWithKey(sealed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if len(sealed) < ivSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: sealed content is %d bytes", ErrDecryption, len(sealed))
	}

	plaintext, err := gcm.Open(nil, sealed[:ivSize], sealed[ivSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

func (c *codec) validateEnvelope(blob models.EncryptedBlob) error {
	if err := c.validate.Struct(blob); err != nil {
		return fmt.Errorf("%w: invalid envelope: %v", ErrDecryption, err)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// parseSnapshot checks that plaintext is a JSON object carrying every
// required top-level field before decoding it into a document.
func parseSnapshot(plaintext []byte) (models.SyncStateDocument, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(plaintext, &fields); err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	for _, name := range models.RequiredDocumentFields {
		if _, ok := fields[name]; !ok {
			return models.SyncStateDocument{}, fmt.Errorf("%w: missing field %q", ErrMalformedState, name)
		}
	}

	var doc models.SyncStateDocument
	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return doc, nil
}
