package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/internal/utils"
	"github.com/MKhiriev/readsync/models"
)

const (
	// StateFileName is the name of the encrypted state blob inside the
	// provider root.
	StateFileName = "readsync-state.json"
	// ContentFolder holds cached source files.
	ContentFolder = "content"
)

// FolderProvider keeps the state blob and content files in a directory,
// typically one mirrored by a desktop sync client.
type FolderProvider struct {
	blobs  *store.FileBlobStore
	closed atomic.Bool
	now    func() time.Time
	logger *logger.Logger
}

// NewFolderProvider returns a provider over blobs.
func NewFolderProvider(blobs *store.FileBlobStore, logger *logger.Logger) *FolderProvider {
	return &FolderProvider{blobs: blobs, now: time.Now, logger: logger}
}

// NewOSFolderProvider returns a provider over the OS directory root.
func NewOSFolderProvider(root string, logger *logger.Logger) (*FolderProvider, error) {
	blobs, err := store.NewOSFileBlobStore(root, logger)
	if err != nil {
		return nil, newError("open", classify(err), err)
	}
	return NewFolderProvider(blobs, logger), nil
}

func (p *FolderProvider) Upload(ctx context.Context, blob models.EncryptedBlob) (models.UploadResult, error) {
	const op = "upload"
	if err := p.check(ctx); err != nil {
		return models.UploadResult{}, newError(op, KindAborted, err)
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return models.UploadResult{}, newError(op, KindOther, fmt.Errorf("encode blob: %w", err))
	}
	if err = p.blobs.Write(ctx, StateFileName, data); err != nil {
		return models.UploadResult{}, p.mapError(op, err)
	}

	p.logger.Debug().
		Str("func", "FolderProvider.Upload").
		Int("size", len(data)).
		Msg("state blob uploaded")

	return models.UploadResult{
		Success:   true,
		UpdatedAt: p.now().UnixMilli(),
		ETag:      utils.ETag(data),
	}, nil
}

func (p *FolderProvider) Download(ctx context.Context) (*models.EncryptedBlob, error) {
	const op = "download"
	if err := p.check(ctx); err != nil {
		return nil, newError(op, KindAborted, err)
	}

	data, err := p.blobs.Read(ctx, StateFileName)
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, p.mapError(op, err)
	}

	var blob models.EncryptedBlob
	if err = json.Unmarshal(data, &blob); err != nil {
		return nil, newError(op, KindOther, fmt.Errorf("decode blob: %w", err))
	}
	return &blob, nil
}

func (p *FolderProvider) GetRemoteMetadata(ctx context.Context) (models.RemoteMetadata, error) {
	const op = "metadata"
	if err := p.check(ctx); err != nil {
		return models.RemoteMetadata{}, newError(op, KindAborted, err)
	}

	data, err := p.blobs.Read(ctx, StateFileName)
	if errors.Is(err, store.ErrBlobNotFound) {
		return models.RemoteMetadata{Exists: false}, nil
	}
	if err != nil {
		return models.RemoteMetadata{}, p.mapError(op, err)
	}
	info, err := p.blobs.Stat(ctx, StateFileName)
	if err != nil {
		return models.RemoteMetadata{}, p.mapError(op, err)
	}

	return models.RemoteMetadata{
		Exists:    true,
		UpdatedAt: info.ModTime.UnixMilli(),
		Size:      info.Size,
		ETag:      utils.ETag(data),
	}, nil
}

// IsConnected reports whether the folder is usable.
func (p *FolderProvider) IsConnected(ctx context.Context) bool {
	if p.check(ctx) != nil {
		return false
	}
	_, err := p.blobs.List(ctx, ContentFolder)
	return err == nil
}

func (p *FolderProvider) Disconnect(ctx context.Context) error {
	p.closed.Store(true)
	return nil
}

func (p *FolderProvider) EnsureContentFolder(ctx context.Context) error {
	const op = "ensure content folder"
	if err := p.check(ctx); err != nil {
		return newError(op, KindAborted, err)
	}
	return p.mapError(op, p.blobs.MkdirAll(ctx, ContentFolder))
}

func (p *FolderProvider) ListContentFiles(ctx context.Context) ([]string, error) {
	const op = "list content"
	if err := p.check(ctx); err != nil {
		return nil, newError(op, KindAborted, err)
	}
	names, err := p.blobs.List(ctx, ContentFolder)
	if err != nil {
		return nil, p.mapError(op, err)
	}
	return names, nil
}

func (p *FolderProvider) UploadContentFile(ctx context.Context, name string, data []byte) error {
	const op = "upload content"
	if err := p.check(ctx); err != nil {
		return newError(op, KindAborted, err)
	}
	return p.mapError(op, p.blobs.Write(ctx, contentPath(name), data))
}

func (p *FolderProvider) DownloadContentFile(ctx context.Context, name string) ([]byte, error) {
	const op = "download content"
	if err := p.check(ctx); err != nil {
		return nil, newError(op, KindAborted, err)
	}
	data, err := p.blobs.Read(ctx, contentPath(name))
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, p.mapError(op, err)
	}
	return data, nil
}

func (p *FolderProvider) DeleteContentFile(ctx context.Context, name string) (bool, error) {
	const op = "delete content"
	if err := p.check(ctx); err != nil {
		return false, newError(op, KindAborted, err)
	}
	removed, err := p.blobs.Remove(ctx, contentPath(name))
	if err != nil {
		return false, p.mapError(op, err)
	}
	return removed, nil
}

func (p *FolderProvider) check(ctx context.Context) error {
	if p.closed.Load() {
		return ErrDisconnected
	}
	return ctx.Err()
}

func (p *FolderProvider) mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrBlobNotFound) {
		return newError(op, KindNotFound, err)
	}

	p.logger.Err(err).
		Str("func", "FolderProvider").
		Str("op", op).
		Msg("folder provider operation failed")
	return wrapError(op, err)
}

func contentPath(name string) string {
	return ContentFolder + "/" + name
}
