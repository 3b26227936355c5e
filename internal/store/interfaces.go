// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer: the client's local SQLite
// state (a JSON key/value table plus cached source files) and the
// filesystem-backed blob store shared by the folder provider and the blob
// server.
package store

import (
	"context"

	"github.com/MKhiriev/readsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStateRepository persists the client's raw key/value state. Values are
// arbitrary JSON-compatible Go values (the same shapes the state document
// uses on the wire).
type LocalStateRepository interface {
	// LoadRaw returns every stored key. An empty store yields an empty,
	// non-nil map.
	LoadRaw(ctx context.Context) (map[string]any, error)

	// SaveRaw replaces the stored state with raw atomically.
	SaveRaw(ctx context.Context, raw map[string]any) error

	// SetValue upserts a single key. A nil value is stored as JSON null.
	SetValue(ctx context.Context, key string, value any) error
}

// ContentFileRepository stores cached source files (PDF, EPUB, ...) by name.
type ContentFileRepository interface {
	// GetContentFile returns [ErrContentFileNotFound] for an unknown name.
	GetContentFile(ctx context.Context, name string) ([]byte, error)
	PutContentFile(ctx context.Context, name string, data []byte) error
	ListContentFiles(ctx context.Context) ([]string, error)
}

// LocalStorage is the client's complete local store.
type LocalStorage interface {
	LocalStateRepository
	ContentFileRepository
}

// UserRepository keeps the accounts registered on the blob server.
type UserRepository interface {
	// CreateUser stores user. It fails with [ErrLoginAlreadyExists] when the
	// account is taken and never overwrites an existing record.
	CreateUser(ctx context.Context, user models.User) error

	// FindUser returns [ErrNoUserWasFound] for an unknown account.
	FindUser(ctx context.Context, account string) (models.User, error)
}
