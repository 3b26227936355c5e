package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
)

// localStorage joins the two local repositories into a [LocalStorage].
type localStorage struct {
	LocalStateRepository
	ContentFileRepository
}

// ClientStorages groups the client's storage layer.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed local state and content cache.
	LocalStorage LocalStorage

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN (creating
// the file if it does not yet exist), runs pending migrations and wires the
// repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewLocalStorage(db, logger),
		db:           db,
	}, nil
}

// NewLocalStorage wires both repositories over a single connection.
func NewLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorage{
		LocalStateRepository:  NewLocalStateRepository(db, logger),
		ContentFileRepository: NewContentFileRepository(db, logger),
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
