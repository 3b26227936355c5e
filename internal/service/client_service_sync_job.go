package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/readsync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a job that calls syncService.Sync on a ticker. The job
// is idle until Start is called.
func NewSyncJob(syncService SyncService, logger *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: logger}
}

// Start implements SyncJob. Failed cycles are logged and left for the next
// tick; nothing is retried in between.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				result, err := j.syncService.Sync(jobCtx)
				switch {
				case err != nil:
					j.logger.Warn().Err(err).Str("func", "syncJob").Msg("scheduled sync failed")
				case result.Skipped:
					j.logger.Debug().Str("func", "syncJob").Msg("previous sync still running")
				}
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
