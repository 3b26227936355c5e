package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/readsync/internal/logger"
)

type localStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalStateRepository returns a [LocalStateRepository] over db.
func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localStateRepository) LoadRaw(ctx context.Context) (map[string]any, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllStateQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStateRepository.LoadRaw").
			Msg("failed to execute query for local state")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	raw := make(map[string]any)
	for rows.Next() {
		var key, encoded string
		if err = rows.Scan(&key, &encoded); err != nil {
			log.Err(err).
				Str("func", "localStateRepository.LoadRaw").
				Msg("failed to scan local state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var value any
		if err = json.Unmarshal([]byte(encoded), &value); err != nil {
			log.Err(err).
				Str("func", "localStateRepository.LoadRaw").
				Str("key", key).
				Msg("stored value is not valid JSON")
			return nil, fmt.Errorf("%w: key %s: %w", ErrEncodingValue, key, err)
		}
		raw[key] = value
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "localStateRepository.LoadRaw").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return raw, nil
}

func (l *localStateRepository) SaveRaw(ctx context.Context, raw map[string]any) error {
	return l.DB.withRetry(ctx, func(ctx context.Context) error {
		return l.saveRaw(ctx, raw)
	})
}

func (l *localStateRepository) saveRaw(ctx context.Context, raw map[string]any) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveRaw").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllStateQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveRaw").Msg("failed to clear local state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for key, value := range raw {
		query, args, err = upsertStateQuery(key, value)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localStateRepository.SaveRaw").
				Str("key", key).
				Msg("failed to upsert local state value")
			return fmt.Errorf("%w: key %s: %w", ErrExecutingStatement, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveRaw").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localStateRepository) SetValue(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertStateQuery(key, value)
	if err != nil {
		return err
	}

	err = l.DB.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := l.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "localStateRepository.SetValue").
			Str("key", key).
			Msg("failed to upsert local state value")
		return fmt.Errorf("%w: key %s: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func upsertStateQuery(key string, value any) (string, []any, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", nil, fmt.Errorf("%w: key %s: %w", ErrEncodingValue, key, err)
	}

	query, args, err := buildUpsertStateQuery(key, string(encoded))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
