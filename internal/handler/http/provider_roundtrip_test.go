package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/provider"
	"github.com/MKhiriev/readsync/internal/service"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

const (
	roundtripSignKey = "test-sign-key"
	roundtripIssuer  = "readsync"
)

func newRoundtripServer(t *testing.T) *httptest.Server {
	t.Helper()

	blobs := store.NewFileBlobStore(memfs.New(), logger.Nop())
	services, err := service.NewServices(blobs, config.ServerConfig{
		TokenSignKey:  roundtripSignKey,
		TokenIssuer:   roundtripIssuer,
		TokenDuration: time.Minute,
		Version:       "test",
	}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, 5*time.Second, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func newRoundtripProvider(t *testing.T, url, account, password string) *provider.HTTPProvider {
	t.Helper()

	p, err := provider.NewHTTPProvider(config.ClientProvider{
		Type:           config.ProviderHTTP,
		HTTPAddress:    url,
		RequestTimeout: 5 * time.Second,
		Account:        account,
		Password:       password,
	}, logger.Nop())
	require.NoError(t, err)
	return p
}

// newRegisteredProvider registers account on the server before returning
// its provider.
func newRegisteredProvider(t *testing.T, url, account, password string) *provider.HTTPProvider {
	t.Helper()

	p := newRoundtripProvider(t, url, account, password)
	require.NoError(t, p.Register(context.Background()))
	return p
}

func TestHTTPProvider_AgainstBlobServer(t *testing.T) {
	ctx := context.Background()
	srv := newRoundtripServer(t)
	p := newRegisteredProvider(t, srv.URL, "alice", "alice-pw")

	assert.True(t, p.IsConnected(ctx))

	blob, err := p.Download(ctx)
	require.NoError(t, err)
	assert.Nil(t, blob)

	meta, err := p.GetRemoteMetadata(ctx)
	require.NoError(t, err)
	assert.False(t, meta.Exists)

	result, err := p.Upload(ctx, validBlob())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ETag)

	blob, err = p.Download(ctx)
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, validBlob(), *blob)

	meta, err = p.GetRemoteMetadata(ctx)
	require.NoError(t, err)
	assert.True(t, meta.Exists)
	assert.Equal(t, result.ETag, meta.ETag)

	require.NoError(t, p.EnsureContentFolder(ctx))
	require.NoError(t, p.UploadContentFile(ctx, "abc.epub", []byte("book")))

	files, err := p.ListContentFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc.epub"}, files)

	data, err := p.DownloadContentFile(ctx, "abc.epub")
	require.NoError(t, err)
	assert.Equal(t, []byte("book"), data)

	data, err = p.DownloadContentFile(ctx, "missing.epub")
	require.NoError(t, err)
	assert.Nil(t, data)

	deleted, err := p.DeleteContentFile(ctx, "abc.epub")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = p.DeleteContentFile(ctx, "abc.epub")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestHTTPProvider_AccountsAreIsolated(t *testing.T) {
	ctx := context.Background()
	srv := newRoundtripServer(t)
	alice := newRegisteredProvider(t, srv.URL, "alice", "alice-pw")
	bob := newRegisteredProvider(t, srv.URL, "bob", "bob-pw")

	_, err := alice.Upload(ctx, validBlob())
	require.NoError(t, err)

	blob, err := bob.Download(ctx)
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestHTTPProvider_WrongPassword(t *testing.T) {
	ctx := context.Background()
	srv := newRoundtripServer(t)
	alice := newRegisteredProvider(t, srv.URL, "alice", "alice-pw")
	_, err := alice.Upload(ctx, validBlob())
	require.NoError(t, err)

	tests := []struct {
		name     string
		account  string
		password string
	}{
		{name: "wrong password", account: "alice", password: "guess"},
		{name: "password of another account", account: "alice", password: "bob-pw"},
		{name: "unregistered account", account: "mallory", password: "alice-pw"},
	}

	newRegisteredProvider(t, srv.URL, "bob", "bob-pw")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newRoundtripProvider(t, srv.URL, tt.account, tt.password)

			_, err := p.Download(ctx)

			require.Error(t, err)
			assert.Equal(t, provider.KindPermissionDenied, provider.KindOf(err))
		})
	}
}

func TestHTTPProvider_RegisterTwice(t *testing.T) {
	ctx := context.Background()
	srv := newRoundtripServer(t)
	newRegisteredProvider(t, srv.URL, "alice", "alice-pw")

	err := newRoundtripProvider(t, srv.URL, "alice", "other-pw").Register(ctx)

	assert.ErrorIs(t, err, provider.ErrAccountExists)
}

func TestHTTPProvider_LoginAfterRestart(t *testing.T) {
	ctx := context.Background()
	srv := newRoundtripServer(t)
	first := newRegisteredProvider(t, srv.URL, "alice", "alice-pw")
	_, err := first.Upload(ctx, validBlob())
	require.NoError(t, err)
	require.NoError(t, first.Disconnect(ctx))

	second := newRoundtripProvider(t, srv.URL, "alice", "alice-pw")
	blob, err := second.Download(ctx)

	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, validBlob(), *blob)
}

func TestHTTPProvider_Disconnect(t *testing.T) {
	ctx := context.Background()
	srv := newRoundtripServer(t)
	p := newRegisteredProvider(t, srv.URL, "alice", "alice-pw")

	require.NoError(t, p.Disconnect(ctx))

	assert.False(t, p.IsConnected(ctx))
	_, err := p.Download(ctx)
	assert.Equal(t, provider.KindAborted, provider.KindOf(err))
}
