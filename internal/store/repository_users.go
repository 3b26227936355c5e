package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/models"
)

// UsersDir is the directory of the blob store holding user records. Account
// names starting with a dot are refused, so it never collides with an
// account directory.
const UsersDir = ".users"

// fileUserRepository keeps one JSON record per account under [UsersDir].
type fileUserRepository struct {
	blobs *FileBlobStore

	// mu makes the exists-check and write of CreateUser one step.
	mu sync.Mutex

	logger *logger.Logger
}

// NewFileUserRepository returns a [UserRepository] stored inside blobs.
func NewFileUserRepository(blobs *FileBlobStore, logger *logger.Logger) (UserRepository, error) {
	users, err := blobs.Sub(UsersDir)
	if err != nil {
		return nil, err
	}
	return &fileUserRepository{blobs: users, logger: logger}, nil
}

func (r *fileUserRepository) CreateUser(ctx context.Context, user models.User) error {
	name, err := userRecordName(user.Account)
	if err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.blobs.Stat(ctx, name)
	switch {
	case err == nil:
		return ErrLoginAlreadyExists
	case !errors.Is(err, ErrBlobNotFound):
		return fmt.Errorf("check user %s: %w", user.Account, err)
	}

	if err = r.blobs.Write(ctx, name, data); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileUserRepository.CreateUser").
			Str("account", user.Account).
			Msg("failed to store user")
		return err
	}
	return nil
}

func (r *fileUserRepository) FindUser(ctx context.Context, account string) (models.User, error) {
	name, err := userRecordName(account)
	if err != nil {
		return models.User{}, err
	}

	data, err := r.blobs.Read(ctx, name)
	if errors.Is(err, ErrBlobNotFound) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(data, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: user %s: %w", ErrEncodingValue, account, err)
	}
	return user, nil
}

func userRecordName(account string) (string, error) {
	if account == "" || strings.HasPrefix(account, ".") || strings.ContainsAny(account, `/\`) {
		return "", fmt.Errorf("%w: account %q", ErrInvalidBlobName, account)
	}
	return account + ".json", nil
}
