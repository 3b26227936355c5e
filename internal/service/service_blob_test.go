package service

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

func newTestBlobService(t *testing.T) BlobService {
	t.Helper()
	root := store.NewFileBlobStore(memfs.New(), logger.Nop())
	return NewBlobService(root, logger.Nop())
}

var validBlob = models.EncryptedBlob{
	Version:     1,
	Algorithm:   "AES-GCM",
	Salt:        "MDEyMzQ1Njc4OWFiY2RlZg==",
	IV:          "AAAAAAAAAAAAAAAA",
	Ciphertext:  "Y2lwaGVydGV4dA==",
	EncryptedAt: 1700000000000,
}

func TestBlobService_StateRoundTrip(t *testing.T) {
	svc := newTestBlobService(t)
	ctx := context.Background()

	_, err := svc.GetState(ctx, "alice")
	require.ErrorIs(t, err, ErrStateNotFound)

	meta, err := svc.GetStateMetadata(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, meta.Exists)

	result, err := svc.PutState(ctx, "alice", validBlob)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ETag)

	got, err := svc.GetState(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, validBlob, got)

	meta, err = svc.GetStateMetadata(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, meta.Exists)
	assert.Equal(t, result.ETag, meta.ETag)
	assert.Positive(t, meta.Size)
}

func TestBlobService_AccountsAreIsolated(t *testing.T) {
	svc := newTestBlobService(t)
	ctx := context.Background()

	_, err := svc.PutState(ctx, "alice", validBlob)
	require.NoError(t, err)
	require.NoError(t, svc.PutContent(ctx, "alice", "h1", []byte("pdf")))

	_, err = svc.GetState(ctx, "bob")
	assert.ErrorIs(t, err, ErrStateNotFound)

	files, err := svc.ListContent(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestBlobService_PutState_RejectsMalformedEnvelope(t *testing.T) {
	svc := newTestBlobService(t)
	ctx := context.Background()

	cases := map[string]func(b *models.EncryptedBlob){
		"version":    func(b *models.EncryptedBlob) { b.Version = 2 },
		"algorithm":  func(b *models.EncryptedBlob) { b.Algorithm = "AES-CBC" },
		"salt":       func(b *models.EncryptedBlob) { b.Salt = "" },
		"iv":         func(b *models.EncryptedBlob) { b.IV = "%%%" },
		"ciphertext": func(b *models.EncryptedBlob) { b.Ciphertext = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			blob := validBlob
			mutate(&blob)

			_, err := svc.PutState(ctx, "alice", blob)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}

	_, err := svc.GetState(ctx, "alice")
	assert.ErrorIs(t, err, ErrStateNotFound, "rejected blobs must not be stored")
}

func TestBlobService_InvalidAccount(t *testing.T) {
	svc := newTestBlobService(t)
	ctx := context.Background()

	for _, account := range []string{"", ".", "..", ".users", "a/b", `a\b`} {
		_, err := svc.GetState(ctx, account)
		assert.ErrorIs(t, err, ErrInvalidAccount, "account %q", account)
	}
}

func TestBlobService_ContentLifecycle(t *testing.T) {
	svc := newTestBlobService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureContentFolder(ctx, "alice"))

	files, err := svc.ListContent(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, files)

	require.NoError(t, svc.PutContent(ctx, "alice", "h2", []byte("two")))
	require.NoError(t, svc.PutContent(ctx, "alice", "h1", []byte("one")))

	files, err = svc.ListContent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "h2"}, files)

	data, err := svc.GetContent(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)

	removed, err := svc.DeleteContent(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteContent(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = svc.GetContent(ctx, "alice", "h1")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestBlobService_InvalidContentName(t *testing.T) {
	svc := newTestBlobService(t)
	ctx := context.Background()

	for _, name := range []string{"", "..", "a/b", "x.tmp"} {
		err := svc.PutContent(ctx, "alice", name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "name %q", name)
	}
}
