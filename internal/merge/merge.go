// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"reflect"
	"time"

	"github.com/MKhiriev/readsync/models"
)

// Result is the outcome of a merge.
type Result struct {
	// Merged is the authoritative snapshot to persist locally.
	Merged models.SyncStateDocument

	// HasChanges reports whether Merged differs from the local input, i.e.
	// the remote contributed something local did not already have.
	HasChanges bool
}

// Engine merges snapshots. Its only state is the clock used to stamp
// Merged.UpdatedAt.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an Engine that stamps results with the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock returns an Engine that stamps results with now.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Merge reconciles local with remote. localDeviceID is stamped onto the
// merged document: the result always belongs to the device that merged it.
func (e *Engine) Merge(local, remote models.SyncStateDocument, localDeviceID string) Result {
	remoteNewer := remote.UpdatedAt > local.UpdatedAt

	merged := models.SyncStateDocument{
		SchemaVersion: max(local.SchemaVersion, remote.SchemaVersion),
		DeviceID:      localDeviceID,
		UpdatedAt:     e.now().UnixMilli(),
	}

	if remoteNewer {
		merged.Settings = remote.Settings
		merged.OnboardingCompleted = remote.OnboardingCompleted
		merged.ExitConfirmationDismissed = remote.ExitConfirmationDismissed
	} else {
		merged.Settings = local.Settings
		merged.OnboardingCompleted = local.OnboardingCompleted
		merged.ExitConfirmationDismissed = local.ExitConfirmationDismissed
	}

	merged.Presets = mergePresets(local.Presets, remote.Presets, remoteNewer)
	merged.CustomThemes = mergeThemes(local.CustomThemes, remote.CustomThemes, remoteNewer)
	merged.ArchiveItems = mergeArchiveItems(local.ArchiveItems, remote.ArchiveItems)
	merged.Positions = mergePositions(local.Positions, remote.Positions)

	return Result{
		Merged:     merged,
		HasChanges: differs(local, merged),
	}
}

// Merge reconciles local with remote using the wall clock.
func Merge(local, remote models.SyncStateDocument, localDeviceID string) Result {
	return NewEngine().Merge(local, remote, localDeviceID)
}

// differs compares every merged field against local. UpdatedAt, DeviceID
// and SchemaVersion are bookkeeping and do not count as content.
func differs(local, merged models.SyncStateDocument) bool {
	switch {
	case local.OnboardingCompleted != merged.OnboardingCompleted,
		local.ExitConfirmationDismissed != merged.ExitConfirmationDismissed:
		return true
	case !sameSettings(local.Settings, merged.Settings):
		return true
	case !reflect.DeepEqual(normalizePresets(local.Presets), normalizePresets(merged.Presets)):
		return true
	case !reflect.DeepEqual(emptyToNil(local.CustomThemes), emptyToNil(merged.CustomThemes)):
		return true
	case !reflect.DeepEqual(emptyToNil(local.ArchiveItems), emptyToNil(merged.ArchiveItems)):
		return true
	case !reflect.DeepEqual(normalizePositions(local.Positions), normalizePositions(merged.Positions)):
		return true
	}
	return false
}

func sameSettings(a, b models.Settings) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func normalizePresets(m map[string]models.PartialSettings) map[string]models.PartialSettings {
	if len(m) == 0 {
		return nil
	}
	return m
}

func normalizePositions(m map[string]models.ReadingPosition) map[string]models.ReadingPosition {
	if len(m) == 0 {
		return nil
	}
	return m
}

func emptyToNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Differs reports whether a and b carry different synced content. Document
// metadata (schema version, device and timestamp) is ignored.
func Differs(a, b models.SyncStateDocument) bool {
	return differs(a, b)
}
