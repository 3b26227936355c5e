package schema

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// migrateV2ToV3 introduces the sync bookkeeping keys and the device
// identity. An existing deviceId is never replaced.
func migrateV2ToV3(raw map[string]any) (map[string]any, error) {
	out := shallowCopy(raw)

	setIfAbsent(out, KeySyncEnabled, false)
	setIfAbsent(out, KeySyncProvider, nil)
	setIfAbsent(out, KeyLastSyncTime, nil)
	setIfAbsent(out, KeyLastSyncError, nil)

	if id, _ := out[KeyDeviceID].(string); id == "" {
		deviceID, err := NewDeviceID()
		if err != nil {
			return nil, err
		}
		out[KeyDeviceID] = deviceID
	}

	return out, nil
}

// NewDeviceID returns 16 random bytes as 32 lowercase hex characters.
func NewDeviceID() (string, error) {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generate device id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func setIfAbsent(raw map[string]any, key string, value any) {
	if _, ok := raw[key]; !ok {
		raw[key] = value
	}
}
