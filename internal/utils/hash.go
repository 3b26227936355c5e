package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ETag returns a strong entity tag for data: the hex-encoded SHA-256 digest
// wrapped in double quotes, as it appears in an ETag header.
//
// Example usage:
//
//	w.Header().Set("ETag", utils.ETag(body))
func ETag(data []byte) string {
	return `"` + ContentHash(data) + `"`
}

// ContentHash returns the hex-encoded SHA-256 digest of data.
//
// It is used both for entity tags and as a content address for cached
// source files.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
