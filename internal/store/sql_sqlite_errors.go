package store

import (
	"context"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells whether a failed statement may be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and malformed statements.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient lock contention: another connection or
	// process holds the database file.
	Retryable
)

// ErrorClassificator classifies database errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for the sqlite3
// driver.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify reports [Retryable] for SQLITE_BUSY and SQLITE_LOCKED.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}
	return NonRetryable
}

const (
	retryBaseDelay  = 25 * time.Millisecond
	retryMaxRetries = 4
)

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// the retries are used up.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	classifier := db.errorClassificator
	if classifier == nil {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if classifier.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Msg("database is busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
