package store

import (
	"database/sql"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/migrations"
)

// DB wraps the SQLite connection of the local store.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
