// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"math"

	"github.com/MKhiriev/readsync/internal/logger"
)

// CurrentStorageVersion is the schema version written by this build.
const CurrentStorageVersion = 3

// Raw keys shared by the migration steps and the local store.
const (
	KeyVersion         = "version"
	KeyDeviceID        = "deviceId"
	KeyRecentDocuments = "recentDocuments"
	KeyArchiveItems    = "archiveItems"
	KeySyncEnabled     = "syncEnabled"
	KeySyncProvider    = "syncProvider"
	KeyLastSyncTime    = "lastSyncTime"
	KeyLastSyncError   = "lastSyncError"

	KeyUpdatedAt                 = "updatedAt"
	KeySettings                  = "settings"
	KeyPresets                   = "presets"
	KeyCustomThemes              = "customThemes"
	KeyPositions                 = "positions"
	KeyOnboardingCompleted       = "onboardingCompleted"
	KeyExitConfirmationDismissed = "exitConfirmationDismissed"
	KeySyncSalt                  = "syncSalt"

	// KeyCachedDocument is the local-only extracted document of an archive
	// item. It never leaves the device.
	KeyCachedDocument = "cachedDocument"
)

// Step upgrades a raw record from version N to N+1.
type Step func(raw map[string]any) (map[string]any, error)

// steps[i] upgrades version i+1 to i+2.
var steps = []Step{
	migrateV1ToV2,
	migrateV2ToV3,
}

// Migrate brings raw up to CurrentStorageVersion and stamps the version
// key. A record without a version key is treated as version 1. The input
// map is never modified.
//
// It reports whether any step ran.
func Migrate(raw map[string]any) (map[string]any, bool, error) {
	return migrate(raw, logger.Nop())
}

// MigrateWithLogger is Migrate that reports every applied step to log.
func MigrateWithLogger(raw map[string]any, log *logger.Logger) (map[string]any, bool, error) {
	return migrate(raw, log)
}

func migrate(raw map[string]any, log *logger.Logger) (map[string]any, bool, error) {
	version, err := VersionOf(raw)
	if err != nil {
		return nil, false, err
	}
	if err = CheckVersion(version); err != nil {
		return nil, false, err
	}

	current := shallowCopy(raw)
	for v := version; v < CurrentStorageVersion; v++ {
		next, err := steps[v-1](current)
		if err != nil {
			return nil, false, fmt.Errorf("migrate v%d to v%d: %w", v, v+1, err)
		}
		next[KeyVersion] = v + 1
		current = next

		log.Info().
			Str("func", "schema.Migrate").
			Int("from", v).
			Int("to", v+1).
			Msg("applied storage migration")
	}

	return current, version < CurrentStorageVersion, nil
}

// CheckVersion refuses versions this build cannot read.
func CheckVersion(version int) error {
	if version < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
	if version > CurrentStorageVersion {
		return fmt.Errorf("%w: stored version %d is newer than supported %d",
			ErrUnsupportedSchema, version, CurrentStorageVersion)
	}
	return nil
}

// VersionOf reads the version key of raw. A missing or null key is
// version 1. JSON numbers arrive as float64 and are accepted when they hold
// an integral value.
func VersionOf(raw map[string]any) (int, error) {
	v, ok := raw[KeyVersion]
	if !ok || v == nil {
		return 1, nil
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidVersion, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: unexpected type %T", ErrInvalidVersion, v)
	}
}

func shallowCopy(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw)+4)
	for k, v := range raw {
		out[k] = v
	}
	return out
}
