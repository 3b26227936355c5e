package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/service"
	"github.com/MKhiriev/readsync/models"
)

// ErrInitialSyncFailed is returned by Run in run-once mode when the only
// cycle did not succeed.
var ErrInitialSyncFailed = errors.New("initial sync failed")

type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, workers config.ClientWorkers, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil || services.SyncJob == nil {
		return nil, errors.New("client services are not initialized")
	}
	return &App{services: services, workers: workers, info: info, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("version", a.info.BuildVersion()).Msg("readsync client started")
	a.logStatus(ctx)

	err := a.syncOnce(ctx)
	if a.workers.RunOnce {
		return err
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("readsync client stopping")
	return nil
}

// logStatus reports how the previous run ended.
func (a *App) logStatus(ctx context.Context) {
	status, err := a.services.SyncService.Status(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not read sync status")
		return
	}

	event := a.logger.Info().Bool("sync_enabled", status.SyncEnabled)
	if status.LastSyncTime != nil {
		event = event.Time("last_sync", time.UnixMilli(*status.LastSyncTime))
	}
	if status.LastSyncError != nil {
		event = event.Str("last_error", *status.LastSyncError)
	}
	event.Msg("previous sync status")
}

func (a *App) syncOnce(ctx context.Context) error {
	result, err := a.services.SyncService.Sync(ctx)
	if err != nil {
		a.logger.Err(err).Msg("sync failed")
		return fmt.Errorf("%w: %w", ErrInitialSyncFailed, err)
	}

	a.logger.Info().
		Bool("skipped", result.Skipped).
		Bool("has_changes", result.HasChanges).
		Bool("uploaded", result.Uploaded).
		Msg("sync finished")

	if !result.Skipped && !result.Success {
		return ErrInitialSyncFailed
	}
	return nil
}

// RecordPosition stores a locally reported reading position. It shares the
// local state lock with the sync cycle so neither overwrites the other.
func (a *App) RecordPosition(ctx context.Context, report models.PositionReport) (bool, error) {
	if a.services.ProgressService == nil {
		return false, errors.New("progress service is not initialized")
	}
	return a.services.ProgressService.RecordPosition(ctx, report)
}
