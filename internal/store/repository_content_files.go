package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/readsync/internal/logger"
)

type contentFileRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewContentFileRepository returns a [ContentFileRepository] over db.
func NewContentFileRepository(db *DB, logger *logger.Logger) ContentFileRepository {
	return &contentFileRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *contentFileRepository) GetContentFile(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentFileQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContentFileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "contentFileRepository.GetContentFile").
			Str("name", name).
			Msg("failed to read content file")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return data, nil
}

func (c *contentFileRepository) PutContentFile(ctx context.Context, name string, data []byte) error {
	log := logger.FromContext(ctx)

	if err := validateBlobName(name); err != nil {
		return err
	}

	query, args, err := buildUpsertContentFileQuery(name, data, c.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "contentFileRepository.PutContentFile").
			Str("name", name).
			Msg("failed to save content file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *contentFileRepository) ListContentFiles(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContentFilesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contentFileRepository.ListContentFiles").
			Msg("failed to list content files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}
