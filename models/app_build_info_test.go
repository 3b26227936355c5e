package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestAppBuildInfo_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewAppBuildInfo("v2.0.0", "2026-01-02", ""))
	require.NoError(t, err)

	assert.JSONEq(t, `{"version":"v2.0.0","date":"2026-01-02","commit":"N/A"}`, string(data))
}
