// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// SyncStateDocument is the unit of synchronisation between devices. It is
// built fresh from local storage on every sync cycle and never persisted as
// a whole.
//
// Top-level collections are encoded without omitempty so that a nil and an
// empty collection both survive an encrypt/decrypt round trip unchanged.
type SyncStateDocument struct {
	// SchemaVersion identifies which migration steps the producing device had
	// applied. It only ever grows.
	SchemaVersion int `json:"schemaVersion"`

	// DeviceID is the stable per-install identifier of the producing device.
	DeviceID string `json:"deviceId"`

	// UpdatedAt is the freshness marker (epoch ms) of the whole document.
	UpdatedAt int64 `json:"updatedAt"`

	// Settings is resolved whole by document recency.
	Settings Settings `json:"settings"`

	// Presets are keyed by preset name.
	Presets map[string]PartialSettings `json:"presets"`

	// CustomThemes are keyed by Theme.Name; order is not significant.
	CustomThemes []Theme `json:"customThemes"`

	// ArchiveItems are keyed by ArchiveItem.ID.
	ArchiveItems []ArchiveItem `json:"archiveItems"`

	// Positions maps a document key (URL or book identity) to the reading
	// position inside that document.
	Positions map[string]ReadingPosition `json:"positions"`

	OnboardingCompleted       bool `json:"onboardingCompleted"`
	ExitConfirmationDismissed bool `json:"exitConfirmationDismissed"`
}

// Settings is the user's reader configuration. It is an open record so that
// settings added by newer app versions pass through older ones untouched.
type Settings map[string]any

// PartialSettings is a named subset of Settings saved as a preset.
type PartialSettings map[string]any

// Theme is a user-defined colour theme. Only Name is interpreted; every
// other key is carried in Extra and written back flat next to it.
type Theme struct {
	Name  string
	Extra map[string]any
}

// MarshalJSON flattens Extra into the object. Name wins over an Extra "name".
func (t Theme) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(t.Extra)+1)
	for k, v := range t.Extra {
		out[k] = v
	}
	out["name"] = t.Name
	return json.Marshal(out)
}

// UnmarshalJSON keeps every key other than "name" in Extra.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var name string
	if v, ok := raw["name"]; ok {
		s, isString := v.(string)
		if !isString {
			return fmt.Errorf("theme name must be a string, got %T", v)
		}
		name = s
		delete(raw, "name")
	}

	t.Name = name
	t.Extra = nil
	if len(raw) > 0 {
		t.Extra = raw
	}
	return nil
}

// RequiredDocumentFields lists the top-level keys a decrypted snapshot must
// carry to be accepted.
var RequiredDocumentFields = []string{
	"schemaVersion",
	"deviceId",
	"updatedAt",
	"settings",
	"archiveItems",
	"positions",
}
