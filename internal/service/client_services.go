package service

import (
	"sync"

	"github.com/MKhiriev/readsync/internal/config"
	"github.com/MKhiriev/readsync/internal/crypto"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/provider"
	"github.com/MKhiriev/readsync/internal/store"
)

// ClientServices groups the sync client services.
type ClientServices struct {
	SyncService     SyncService
	SyncJob         SyncJob
	ProgressService ProgressService
}

func NewClientServices(localStore store.LocalStorage, syncProvider provider.SyncProvider, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	stateLock := new(sync.Mutex)
	syncSvc := newSyncService(localStore, syncProvider, cfg.Provider.Type, crypto.NewCodec(), cfg.App.Passphrase, stateLock, logger.WithComponent("sync"))

	return &ClientServices{
		SyncService:     syncSvc,
		SyncJob:         NewSyncJob(syncSvc, logger.WithComponent("sync-job")),
		ProgressService: newProgressService(localStore, stateLock, logger.WithComponent("progress")),
	}
}
