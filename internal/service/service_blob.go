package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/provider"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

// blobService keeps every account in its own sub-directory of root, laid
// out exactly like a synced folder: the state file next to a content
// directory. Each call opens the account through a FolderProvider, so a
// server directory can be handed to a folder-provider client unchanged.
type blobService struct {
	root     *store.FileBlobStore
	validate *validator.Validate

	logger *logger.Logger
}

// NewBlobService returns a BlobService over root.
func NewBlobService(root *store.FileBlobStore, logger *logger.Logger) BlobService {
	return &blobService{
		root:     root,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *blobService) GetState(ctx context.Context, account string) (models.EncryptedBlob, error) {
	folder, err := s.open(account)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	blob, err := folder.Download(ctx)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("read state of %s: %w", account, err)
	}
	if blob == nil {
		return models.EncryptedBlob{}, ErrStateNotFound
	}
	return *blob, nil
}

func (s *blobService) PutState(ctx context.Context, account string, blob models.EncryptedBlob) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(blob); err != nil {
		log.Err(err).Str("account", account).Msg("rejected malformed state envelope")
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	folder, err := s.open(account)
	if err != nil {
		return models.UploadResult{}, err
	}

	result, err := folder.Upload(ctx, blob)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("write state of %s: %w", account, err)
	}

	log.Info().Str("account", account).Str("etag", result.ETag).Msg("state blob stored")
	return result, nil
}

func (s *blobService) GetStateMetadata(ctx context.Context, account string) (models.RemoteMetadata, error) {
	folder, err := s.open(account)
	if err != nil {
		return models.RemoteMetadata{}, err
	}
	return folder.GetRemoteMetadata(ctx)
}

func (s *blobService) EnsureContentFolder(ctx context.Context, account string) error {
	folder, err := s.open(account)
	if err != nil {
		return err
	}
	return folder.EnsureContentFolder(ctx)
}

func (s *blobService) ListContent(ctx context.Context, account string) ([]string, error) {
	folder, err := s.open(account)
	if err != nil {
		return nil, err
	}
	return folder.ListContentFiles(ctx)
}

func (s *blobService) PutContent(ctx context.Context, account, name string, data []byte) error {
	if err := validateContentName(name); err != nil {
		return err
	}
	folder, err := s.open(account)
	if err != nil {
		return err
	}
	return folder.UploadContentFile(ctx, name, data)
}

func (s *blobService) GetContent(ctx context.Context, account, name string) ([]byte, error) {
	if err := validateContentName(name); err != nil {
		return nil, err
	}
	folder, err := s.open(account)
	if err != nil {
		return nil, err
	}

	data, err := folder.DownloadContentFile(ctx, name)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrContentNotFound
	}
	return data, nil
}

func (s *blobService) DeleteContent(ctx context.Context, account, name string) (bool, error) {
	if err := validateContentName(name); err != nil {
		return false, err
	}
	folder, err := s.open(account)
	if err != nil {
		return false, err
	}
	return folder.DeleteContentFile(ctx, name)
}

func (s *blobService) open(account string) (*provider.FolderProvider, error) {
	if err := validateAccount(account); err != nil {
		return nil, err
	}
	sub, err := s.root.Sub(account)
	if err != nil {
		return nil, fmt.Errorf("open account %s: %w", account, err)
	}
	return provider.NewFolderProvider(sub, s.logger), nil
}

func validateAccount(account string) error {
	if account == "" || strings.HasPrefix(account, ".") || strings.ContainsAny(account, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	return nil
}

func validateContentName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasSuffix(name, ".tmp") {
		return fmt.Errorf("%w: content name %q", ErrInvalidDataProvided, name)
	}
	return nil
}
