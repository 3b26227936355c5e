// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestContentHash_MatchesSHA256(t *testing.T) {
	data := []byte("test-data")

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got := ContentHash(data); got != want {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", want, got)
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	a := ContentHash([]byte(`{"version":1}`))
	b := ContentHash([]byte(`{"version":1}`))
	if a != b {
		t.Fatal("hash must be deterministic for the same input")
	}
}

func TestContentHash_DifferentInputs(t *testing.T) {
	if ContentHash([]byte("one")) == ContentHash([]byte("two")) {
		t.Error("different inputs must produce different hashes")
	}
}

func TestETag_Quoted(t *testing.T) {
	tag := ETag([]byte("x"))
	if len(tag) != 66 || tag[0] != '"' || tag[65] != '"' {
		t.Errorf("expected quoted 64-char digest, got %s", tag)
	}
}
