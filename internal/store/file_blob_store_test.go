package store

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/readsync/internal/logger"
)

func newTestBlobStore() *FileBlobStore {
	return NewFileBlobStore(memfs.New(), logger.Nop())
}

func TestFileBlobStore_WriteReadStat(t *testing.T) {
	ctx := context.Background()
	s := newTestBlobStore()

	require.NoError(t, s.Write(ctx, "state.json", []byte(`{"v":1}`)))

	data, err := s.Read(ctx, "state.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), data)

	info, err := s.Stat(ctx, "state.json")
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Size)

	require.NoError(t, s.Write(ctx, "state.json", []byte(`{}`)))
	data, err = s.Read(ctx, "state.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
}

func TestFileBlobStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestBlobStore()

	_, err := s.Read(ctx, "nope")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	_, err = s.Stat(ctx, "nope")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	removed, err := s.Remove(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFileBlobStore_ListSkipsDirsAndTemps(t *testing.T) {
	ctx := context.Background()
	s := newTestBlobStore()

	names, err := s.List(ctx, "content")
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.Write(ctx, "content/b.pdf", []byte("b")))
	require.NoError(t, s.Write(ctx, "content/a.epub", []byte("a")))
	require.NoError(t, s.Write(ctx, "content/c.tmp", []byte("partial")))
	require.NoError(t, s.MkdirAll(ctx, "content/nested"))

	names, err = s.List(ctx, "content")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.epub", "b.pdf"}, names)

	removed, err := s.Remove(ctx, "content/a.epub")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestFileBlobStore_SubIsolates(t *testing.T) {
	ctx := context.Background()
	root := newTestBlobStore()

	alice, err := root.Sub("alice")
	require.NoError(t, err)
	bob, err := root.Sub("bob")
	require.NoError(t, err)

	require.NoError(t, alice.Write(ctx, "state.json", []byte("a")))

	_, err = bob.Read(ctx, "state.json")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	data, err := root.Read(ctx, "alice/state.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)
}

func TestFileBlobStore_RejectsEscapingNames(t *testing.T) {
	ctx := context.Background()
	s := newTestBlobStore()

	for _, name := range []string{"", "/etc/passwd", "../x", "a/../../b", `a\b`} {
		err := s.Write(ctx, name, nil)
		assert.ErrorIs(t, err, ErrInvalidBlobName, name)
	}
	_, err := s.Sub("..")
	assert.ErrorIs(t, err, ErrInvalidBlobName)
}

func TestFileBlobStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestBlobStore().Write(ctx, "x", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewOSFileBlobStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewOSFileBlobStore(t.TempDir()+"/blobs", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "content/x.bin", []byte{1, 2, 3}))
	data, err := s.Read(ctx, "content/x.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
