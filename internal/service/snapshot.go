package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/readsync/internal/schema"
	"github.com/MKhiriev/readsync/models"
)

// BuildSnapshot extracts the synced document from a migrated raw local
// record. Local-only data (cached documents, sync bookkeeping, the salt)
// is left behind.
func BuildSnapshot(raw map[string]any) (models.SyncStateDocument, error) {
	version, err := schema.VersionOf(raw)
	if err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: %w", ErrBuildSnapshot, err)
	}

	wire := map[string]any{
		"schemaVersion":             version,
		"deviceId":                  raw[schema.KeyDeviceID],
		"updatedAt":                 raw[schema.KeyUpdatedAt],
		"settings":                  raw[schema.KeySettings],
		"presets":                   raw[schema.KeyPresets],
		"customThemes":              raw[schema.KeyCustomThemes],
		"archiveItems":              raw[schema.KeyArchiveItems],
		"positions":                 raw[schema.KeyPositions],
		"onboardingCompleted":       raw[schema.KeyOnboardingCompleted],
		"exitConfirmationDismissed": raw[schema.KeyExitConfirmationDismissed],
	}

	var doc models.SyncStateDocument
	if err = convert(wire, &doc); err != nil {
		return models.SyncStateDocument{}, fmt.Errorf("%w: %w", ErrBuildSnapshot, err)
	}
	return doc, nil
}

// ApplySnapshot writes the synced fields of doc into a copy of raw. Cached
// documents of archive items that survive the merge are carried over from
// raw; the schema version and device identity of raw are kept.
func ApplySnapshot(raw map[string]any, doc models.SyncStateDocument) (map[string]any, error) {
	out := make(map[string]any, len(raw)+8)
	for k, v := range raw {
		out[k] = v
	}

	fields := map[string]any{
		schema.KeyUpdatedAt:                 doc.UpdatedAt,
		schema.KeySettings:                  doc.Settings,
		schema.KeyPresets:                   doc.Presets,
		schema.KeyCustomThemes:              doc.CustomThemes,
		schema.KeyPositions:                 doc.Positions,
		schema.KeyOnboardingCompleted:       doc.OnboardingCompleted,
		schema.KeyExitConfirmationDismissed: doc.ExitConfirmationDismissed,
	}
	for key, value := range fields {
		var generic any
		if err := convert(value, &generic); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrApplySnapshot, key, err)
		}
		out[key] = generic
	}

	cached := cachedDocuments(raw)
	items := make([]any, 0, len(doc.ArchiveItems))
	for _, item := range doc.ArchiveItems {
		var generic map[string]any
		if err := convert(item, &generic); err != nil {
			return nil, fmt.Errorf("%w: archive item %s: %w", ErrApplySnapshot, item.ID, err)
		}
		if c, ok := cached[item.ID]; ok {
			generic[schema.KeyCachedDocument] = c
		}
		items = append(items, generic)
	}
	out[schema.KeyArchiveItems] = items

	return out, nil
}

func cachedDocuments(raw map[string]any) map[string]any {
	var items []map[string]any
	switch v := raw[schema.KeyArchiveItems].(type) {
	case []map[string]any:
		items = v
	case []any:
		for _, it := range v {
			if item, ok := it.(map[string]any); ok {
				items = append(items, item)
			}
		}
	}

	cached := make(map[string]any)
	for _, item := range items {
		id, _ := item["id"].(string)
		if c, ok := item[schema.KeyCachedDocument]; ok && id != "" && c != nil {
			cached[id] = c
		}
	}
	return cached
}

// convert re-shapes src into dst through its JSON form.
func convert(src, dst any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
