package service

import (
	"context"
	"time"

	"github.com/MKhiriev/readsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthService registers accounts on the blob server, logs them in and
// verifies the bearer tokens it issued.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a JWT whose subject is user.Account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates tokenString and returns the decoded token. Every
	// failure is reported as ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BlobService stores opaque per-account blobs on the server. It never
// decrypts or merges anything.
type BlobService interface {
	GetState(ctx context.Context, account string) (models.EncryptedBlob, error)

	// PutState replaces the account's state blob. The envelope shape is
	// validated; the ciphertext is not inspected.
	PutState(ctx context.Context, account string, blob models.EncryptedBlob) (models.UploadResult, error)

	GetStateMetadata(ctx context.Context, account string) (models.RemoteMetadata, error)

	EnsureContentFolder(ctx context.Context, account string) error
	ListContent(ctx context.Context, account string) ([]string, error)
	PutContent(ctx context.Context, account, name string, data []byte) error
	GetContent(ctx context.Context, account, name string) ([]byte, error)
	DeleteContent(ctx context.Context, account, name string) (bool, error)
}

// SyncService runs sync cycles between local storage and a provider.
type SyncService interface {
	// Sync runs one full cycle. When another cycle is in flight it returns
	// immediately with a skipped result.
	Sync(ctx context.Context) (models.SyncResult, error)

	// Status returns the sync bookkeeping kept in local storage.
	Status(ctx context.Context) (models.SyncStatus, error)
}

// ProgressService records reading progress reported by the reader into the
// local state. Progress only moves forward; a changed state gets a fresh
// updatedAt so the next sync cycle publishes it.
type ProgressService interface {
	RecordPosition(ctx context.Context, report models.PositionReport) (bool, error)
}

// SyncJob periodically triggers SyncService.Sync.
type SyncJob interface {
	// Start launches the background loop. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
