package provider

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

func newTestFolder(t *testing.T) (*FolderProvider, *store.FileBlobStore) {
	t.Helper()
	blobs := store.NewFileBlobStore(memfs.New(), logger.Nop())
	p := NewFolderProvider(blobs, logger.Nop())
	p.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return p, blobs
}

func testBlob() models.EncryptedBlob {
	return models.EncryptedBlob{
		Version:     1,
		Algorithm:   "AES-GCM",
		Salt:        "c2FsdA==",
		IV:          "aXY=",
		Ciphertext:  "Y3Q=",
		EncryptedAt: 1,
	}
}

func TestFolderProvider_StateRoundtrip(t *testing.T) {
	ctx := context.Background()
	p, blobs := newTestFolder(t)

	blob, err := p.Download(ctx)
	require.NoError(t, err)
	assert.Nil(t, blob)

	meta, err := p.GetRemoteMetadata(ctx)
	require.NoError(t, err)
	assert.False(t, meta.Exists)

	result, err := p.Upload(ctx, testBlob())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(1_700_000_000_000), result.UpdatedAt)
	assert.NotEmpty(t, result.ETag)

	raw, err := blobs.Read(ctx, StateFileName)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"algorithm":"AES-GCM"`)

	blob, err = p.Download(ctx)
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, testBlob(), *blob)

	meta, err = p.GetRemoteMetadata(ctx)
	require.NoError(t, err)
	assert.True(t, meta.Exists)
	assert.Equal(t, int64(len(raw)), meta.Size)
	assert.Equal(t, result.ETag, meta.ETag)
}

func TestFolderProvider_DownloadCorrupted(t *testing.T) {
	ctx := context.Background()
	p, blobs := newTestFolder(t)
	require.NoError(t, blobs.Write(ctx, StateFileName, []byte("{broken")))

	_, err := p.Download(ctx)

	require.Error(t, err)
	assert.Equal(t, KindOther, KindOf(err))
}

func TestFolderProvider_Content(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestFolder(t)

	files, err := p.ListContentFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	require.NoError(t, p.EnsureContentFolder(ctx))
	require.NoError(t, p.UploadContentFile(ctx, "b.pdf", []byte("pdf")))
	require.NoError(t, p.UploadContentFile(ctx, "a.epub", []byte("epub")))

	files, err = p.ListContentFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.epub", "b.pdf"}, files)

	data, err := p.DownloadContentFile(ctx, "a.epub")
	require.NoError(t, err)
	assert.Equal(t, []byte("epub"), data)

	data, err = p.DownloadContentFile(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	removed, err := p.DeleteContentFile(ctx, "a.epub")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = p.DeleteContentFile(ctx, "a.epub")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFolderProvider_IsConnected(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestFolder(t)

	assert.True(t, p.IsConnected(ctx))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.False(t, p.IsConnected(cancelled))

	require.NoError(t, p.Disconnect(ctx))
	assert.False(t, p.IsConnected(ctx))
}

func TestFolderProvider_AfterDisconnect(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestFolder(t)
	require.NoError(t, p.Disconnect(ctx))

	_, err := p.Upload(ctx, testBlob())
	assert.Equal(t, KindAborted, KindOf(err))
	assert.ErrorIs(t, err, ErrDisconnected)

	_, err = p.Download(ctx)
	assert.Equal(t, KindAborted, KindOf(err))

	_, err = p.ListContentFiles(ctx)
	assert.Equal(t, KindAborted, KindOf(err))
}

func TestFolderProvider_CancelledContext(t *testing.T) {
	p, _ := newTestFolder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.UploadContentFile(ctx, "a.epub", []byte("x"))

	assert.Equal(t, KindAborted, KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewOSFolderProvider(t *testing.T) {
	ctx := context.Background()
	p, err := NewOSFolderProvider(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, err = p.Upload(ctx, testBlob())
	require.NoError(t, err)

	blob, err := p.Download(ctx)
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, "AES-GCM", blob.Algorithm)
}
