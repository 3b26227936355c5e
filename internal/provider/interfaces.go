// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider moves the encrypted state blob and cached source files
// between a device and a remote backend.
//
// Providers only transport opaque data: they never decrypt, merge or
// inspect the state. Failures are reported as [*Error] values carrying an
// [ErrorKind], so callers can tell "nothing there" from "not allowed" from
// "cancelled" without parsing messages. "No remote state yet" is not an
// error: Download returns (nil, nil).
//
// Two adapters ship with the package: [FolderProvider] for a directory kept
// in sync by a third-party client, and [HTTPProvider] for the readsync
// blob server.
package provider

import (
	"context"

	"github.com/MKhiriev/readsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// ContentStore holds cached source files (PDF, EPUB, ...) referenced by
// archive items through their file hash.
type ContentStore interface {
	// EnsureContentFolder creates the content folder if it does not exist.
	EnsureContentFolder(ctx context.Context) error

	// ListContentFiles returns the names of all stored content files.
	ListContentFiles(ctx context.Context) ([]string, error)

	// UploadContentFile stores data under name, replacing previous content.
	UploadContentFile(ctx context.Context, name string, data []byte) error

	// DownloadContentFile returns the file content, or (nil, nil) when the
	// file does not exist.
	DownloadContentFile(ctx context.Context, name string) ([]byte, error)

	// DeleteContentFile removes a file. It reports false, nil when there was
	// nothing to delete.
	DeleteContentFile(ctx context.Context, name string) (bool, error)
}

// SyncProvider stores the single encrypted state blob of a reader.
type SyncProvider interface {
	// Upload replaces the remote blob.
	Upload(ctx context.Context, blob models.EncryptedBlob) (models.UploadResult, error)

	// Download returns the remote blob, or (nil, nil) when none exists yet.
	Download(ctx context.Context) (*models.EncryptedBlob, error)

	// GetRemoteMetadata describes the remote blob without downloading it.
	GetRemoteMetadata(ctx context.Context) (models.RemoteMetadata, error)

	// IsConnected reports whether the backend is currently reachable and
	// the provider has not been disconnected.
	IsConnected(ctx context.Context) bool

	// Disconnect releases the provider. Later calls fail with [KindAborted].
	Disconnect(ctx context.Context) error

	ContentStore
}

// AccountRegistrar is implemented by providers backed by a server account
// that has to be created before the first sync.
type AccountRegistrar interface {
	Register(ctx context.Context) error
}
