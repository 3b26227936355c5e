// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/models"
)

// spySyncService counts Sync calls.
type spySyncService struct {
	calls   atomic.Int64
	err     error
	skipped bool
}

func (s *spySyncService) Sync(_ context.Context) (models.SyncResult, error) {
	s.calls.Add(1)
	return models.SyncResult{Skipped: s.skipped, Success: s.err == nil}, s.err
}

func (s *spySyncService) Status(_ context.Context) (models.SyncStatus, error) {
	return models.SyncStatus{}, nil
}

func newTestJob(spy SyncService) SyncJob {
	return NewSyncJob(spy, logger.Nop())
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := newTestJob(&spySyncService{})
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_CallsSync(t *testing.T) {
	spy := &spySyncService{}
	job := newTestJob(spy)

	// ~5 ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync should be called several times, got %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls expected after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newTestJob(&spySyncService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := newTestJob(&spySyncService{})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncService{}
		job := newTestJob(spy)
		ctx, cancel := context.WithCancel(context.Background())

		// falls back to 5 minutes: nothing fires within 20ms
		job.Start(ctx, interval)
		time.Sleep(20 * time.Millisecond)
		cancel()
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load(), "interval %v", interval)
	}
}

func TestSyncJob_Restart_KeepsSyncing(t *testing.T) {
	spy := &spySyncService{}
	job := newTestJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start stops the previous loop internally
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := newTestJob(&spySyncService{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_SyncError_DoesNotStopJob(t *testing.T) {
	spy := &spySyncService{err: assert.AnError}
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "failed cycles must not stop the job: %d", got)
}

func TestSyncJob_SkippedCycle_DoesNotStopJob(t *testing.T) {
	spy := &spySyncService{skipped: true}
	job := newTestJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
