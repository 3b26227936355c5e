// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/readsync/internal/crypto"
	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/merge"
	"github.com/MKhiriev/readsync/internal/provider"
	"github.com/MKhiriev/readsync/internal/schema"
	"github.com/MKhiriev/readsync/internal/store"
	"github.com/MKhiriev/readsync/models"
)

// syncService runs the read local → download → decrypt → merge → write
// local → upload cycle. Cycles are serialised per instance; a Sync call
// arriving while another is running is skipped, not queued.
type syncService struct {
	local        store.LocalStorage
	provider     provider.SyncProvider
	providerName string
	codec        crypto.Codec
	engine       *merge.Engine
	passphrase   string

	// mu guards the local state for the whole cycle. It is shared with the
	// progress service of the same store.
	mu  *sync.Mutex
	now func() time.Time

	logger *logger.Logger
}

// NewSyncService wires a SyncService. providerName is recorded as the
// syncProvider of the local state after every successful cycle.
func NewSyncService(
	local store.LocalStorage,
	syncProvider provider.SyncProvider,
	providerName string,
	codec crypto.Codec,
	passphrase string,
	logger *logger.Logger,
) SyncService {
	return newSyncService(local, syncProvider, providerName, codec, passphrase, new(sync.Mutex), logger)
}

func newSyncService(
	local store.LocalStorage,
	syncProvider provider.SyncProvider,
	providerName string,
	codec crypto.Codec,
	passphrase string,
	mu *sync.Mutex,
	logger *logger.Logger,
) *syncService {
	return &syncService{
		local:        local,
		provider:     syncProvider,
		providerName: providerName,
		codec:        codec,
		engine:       merge.NewEngine(),
		passphrase:   passphrase,
		mu:           mu,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *syncService) Sync(ctx context.Context) (models.SyncResult, error) {
	log := s.logger.With().Str("func", "syncService.Sync").Logger()

	if !s.mu.TryLock() {
		log.Debug().Msg("sync cycle already running, skipping")
		return models.SyncResult{Skipped: true}, nil
	}
	defer s.mu.Unlock()

	result, items, key, err := s.syncState(ctx)
	if err != nil {
		return s.fail(ctx, result, err), err
	}
	if err = s.recordSuccess(ctx); err != nil {
		return s.fail(ctx, result, err), err
	}

	result.ContentUploaded, result.ContentDownloaded, err = s.syncContent(ctx, items, key)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSyncContent, err)
		return s.fail(ctx, result, err), err
	}

	result.Success = true
	result.FinishedAt = s.now().UnixMilli()

	log.Info().
		Bool("has_changes", result.HasChanges).
		Bool("uploaded", result.Uploaded).
		Int("content_uploaded", result.ContentUploaded).
		Int("content_downloaded", result.ContentDownloaded).
		Msg("sync cycle finished")
	return result, nil
}

// syncState reconciles the state document. It returns the archive items of
// the resulting local state and the key derived for this cycle.
func (s *syncService) syncState(ctx context.Context) (models.SyncResult, []models.ArchiveItem, []byte, error) {
	var result models.SyncResult

	raw, err := s.local.LoadRaw(ctx)
	if err != nil {
		return result, nil, nil, fmt.Errorf("%w: %w", ErrLoadLocalState, err)
	}

	raw, migrated, err := schema.MigrateWithLogger(raw, s.logger)
	if err != nil {
		return result, nil, nil, err
	}
	if migrated {
		if err = s.local.SaveRaw(ctx, raw); err != nil {
			return result, nil, nil, fmt.Errorf("%w: %w", ErrSaveLocalState, err)
		}
	}

	local, err := BuildSnapshot(raw)
	if err != nil {
		return result, nil, nil, err
	}

	remoteBlob, err := s.provider.Download(ctx)
	if err != nil {
		return result, nil, nil, fmt.Errorf("%w: %w", ErrDownloadState, err)
	}

	if remoteBlob == nil {
		salt, err := s.localSalt(ctx, raw)
		if err != nil {
			return result, nil, nil, err
		}
		key := s.codec.DeriveKey(s.passphrase, salt)
		if err = s.upload(ctx, local, key, salt); err != nil {
			return result, nil, nil, err
		}
		result.Uploaded = true
		return result, local.ArchiveItems, key, nil
	}

	// The remote salt is authoritative: one derivation serves the state blob
	// and every content file of the cycle.
	salt, err := s.codec.SaltFromBlob(*remoteBlob)
	if err != nil {
		return result, nil, nil, err
	}
	key := s.codec.DeriveKey(s.passphrase, salt)

	remote, err := s.codec.DecryptWithKey(*remoteBlob, key)
	if err != nil {
		return result, nil, nil, err
	}
	if remote.SchemaVersion > schema.CurrentStorageVersion {
		return result, nil, nil, fmt.Errorf("%w: remote snapshot has version %d, supported %d",
			schema.ErrUnsupportedSchema, remote.SchemaVersion, schema.CurrentStorageVersion)
	}

	merged := s.engine.Merge(local, remote, local.DeviceID)
	result.HasChanges = merged.HasChanges

	if merged.HasChanges {
		raw, err = ApplySnapshot(raw, merged.Merged)
		if err != nil {
			return result, nil, nil, err
		}
		if err = s.local.SaveRaw(ctx, raw); err != nil {
			return result, nil, nil, fmt.Errorf("%w: %w", ErrSaveLocalState, err)
		}
	}

	if merged.HasChanges || merge.Differs(remote, merged.Merged) {
		if err = s.rememberSalt(ctx, raw, salt); err != nil {
			return result, nil, nil, err
		}
		if err = s.upload(ctx, merged.Merged, key, salt); err != nil {
			return result, nil, nil, err
		}
		result.Uploaded = true
	}

	return result, merged.Merged.ArchiveItems, key, nil
}

func (s *syncService) upload(ctx context.Context, doc models.SyncStateDocument, key, salt []byte) error {
	blob, err := s.codec.EncryptWithKey(doc, key, salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptState, err)
	}
	if _, err = s.provider.Upload(ctx, blob); err != nil {
		return fmt.Errorf("%w: %w", ErrUploadState, err)
	}
	return nil
}

// localSalt returns the persisted sync salt, generating and persisting one
// on first use.
func (s *syncService) localSalt(ctx context.Context, raw map[string]any) ([]byte, error) {
	if encoded, ok := raw[schema.KeySyncSalt].(string); ok && encoded != "" {
		salt, err := s.codec.SaltFromBlob(models.EncryptedBlob{Salt: encoded})
		if err == nil {
			return salt, nil
		}
		s.logger.Warn().Err(err).Msg("stored sync salt is unusable, generating a new one")
	}

	salt, err := s.codec.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryptState, err)
	}
	if err = s.local.SetValue(ctx, schema.KeySyncSalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveLocalState, err)
	}
	return salt, nil
}

// rememberSalt adopts the salt of the remote blob when the device has none
// yet, so later uploads keep deriving the same key.
func (s *syncService) rememberSalt(ctx context.Context, raw map[string]any, salt []byte) error {
	if encoded, ok := raw[schema.KeySyncSalt].(string); ok && encoded != "" {
		return nil
	}
	if err := s.local.SetValue(ctx, schema.KeySyncSalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveLocalState, err)
	}
	return nil
}

// syncContent uploads referenced source files the remote lacks and
// downloads referenced ones missing locally. Files are sealed with key on
// the way out and opened on the way in; the local copy stays plaintext.
func (s *syncService) syncContent(ctx context.Context, items []models.ArchiveItem, key []byte) (uploaded, downloaded int, err error) {
	referenced := make(map[string]struct{})
	for _, item := range items {
		if item.FileHash != "" {
			referenced[item.FileHash] = struct{}{}
		}
	}
	if len(referenced) == 0 {
		return 0, 0, nil
	}

	if err = s.provider.EnsureContentFolder(ctx); err != nil {
		return 0, 0, err
	}
	remoteNames, err := s.provider.ListContentFiles(ctx)
	if err != nil {
		return 0, 0, err
	}
	localNames, err := s.local.ListContentFiles(ctx)
	if err != nil {
		return 0, 0, err
	}

	remote := toSet(remoteNames)
	local := toSet(localNames)

	hashes := make([]string, 0, len(referenced))
	for h := range referenced {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	for _, name := range hashes {
		_, inLocal := local[name]
		_, inRemote := remote[name]

		switch {
		case inLocal && !inRemote:
			data, err := s.local.GetContentFile(ctx, name)
			if err != nil {
				return uploaded, downloaded, err
			}
			sealed, err := s.codec.SealWithKey(data, key)
			if err != nil {
				return uploaded, downloaded, fmt.Errorf("seal content file %s: %w", name, err)
			}
			if err = s.provider.UploadContentFile(ctx, name, sealed); err != nil {
				return uploaded, downloaded, err
			}
			uploaded++
		case inRemote && !inLocal:
			sealed, err := s.provider.DownloadContentFile(ctx, name)
			if err != nil {
				return uploaded, downloaded, err
			}
			if sealed == nil {
				continue
			}
			data, err := s.codec.OpenWithKey(sealed, key)
			if err != nil {
				return uploaded, downloaded, fmt.Errorf("open content file %s: %w", name, err)
			}
			if err = s.local.PutContentFile(ctx, name, data); err != nil {
				return uploaded, downloaded, err
			}
			downloaded++
		}
	}
	return uploaded, downloaded, nil
}

func (s *syncService) recordSuccess(ctx context.Context) error {
	values := []struct {
		key   string
		value any
	}{
		{schema.KeyLastSyncTime, s.now().UnixMilli()},
		{schema.KeyLastSyncError, nil},
		{schema.KeySyncEnabled, true},
		{schema.KeySyncProvider, s.providerName},
	}
	for _, v := range values {
		if err := s.local.SetValue(ctx, v.key, v.value); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveLocalState, err)
		}
	}
	return nil
}

// fail records err as lastSyncError and completes result.
func (s *syncService) fail(ctx context.Context, result models.SyncResult, err error) models.SyncResult {
	result.Success = false
	result.Error = err.Error()
	result.FinishedAt = s.now().UnixMilli()

	event := s.logger.Err(err).Str("func", "syncService.Sync")
	if kind := provider.KindOf(err); kind != provider.KindOther {
		event = event.Stringer("provider_error", kind)
	}
	switch {
	case errors.Is(err, crypto.ErrDecryption):
		event.Msg("remote state cannot be decrypted, check the passphrase")
	default:
		event.Msg("sync cycle failed")
	}

	// Recorded even when ctx is already cancelled.
	recordCtx := context.WithoutCancel(ctx)
	if setErr := s.local.SetValue(recordCtx, schema.KeyLastSyncError, result.Error); setErr != nil {
		s.logger.Err(setErr).Msg("failed to record last sync error")
	}
	return result
}

func (s *syncService) Status(ctx context.Context) (models.SyncStatus, error) {
	raw, err := s.local.LoadRaw(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrLoadLocalState, err)
	}

	subset := map[string]any{
		"syncEnabled":   raw[schema.KeySyncEnabled],
		"syncProvider":  raw[schema.KeySyncProvider],
		"lastSyncTime":  raw[schema.KeyLastSyncTime],
		"lastSyncError": raw[schema.KeyLastSyncError],
	}
	var status models.SyncStatus
	if err = convert(subset, &status); err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrLoadLocalState, err)
	}
	return status, nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
