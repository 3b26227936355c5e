// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// BlobVersion is the only envelope version this build reads and writes.
	BlobVersion = 1
	// BlobAlgorithm names the cipher used for the ciphertext.
	BlobAlgorithm = "AES-GCM"
)

// EncryptedBlob is the transport-ready encoding of a SyncStateDocument.
// It is the only thing that ever crosses the network or filesystem boundary.
//
// Salt, IV and Ciphertext are standard base64. Ciphertext includes the GCM
// authentication tag.
type EncryptedBlob struct {
	Version     int    `json:"version" validate:"eq=1"`
	Algorithm   string `json:"algorithm" validate:"eq=AES-GCM"`
	Salt        string `json:"salt" validate:"required,base64"`
	IV          string `json:"iv" validate:"required,base64"`
	Ciphertext  string `json:"ciphertext" validate:"required,base64"`
	EncryptedAt int64  `json:"encryptedAt"`
}
