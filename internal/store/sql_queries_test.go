// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertStateQuery(t *testing.T) {
	query, args, err := buildUpsertStateQuery("settings", `{"fontSize":16}`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into local_state")
	assert.Contains(t, q, "on conflict(key) do update")
	assert.NotContains(t, q, "$1")
	assert.Equal(t, []any{"settings", `{"fontSize":16}`}, args)
}

func Test_buildSelectContentFileQuery(t *testing.T) {
	query, args, err := buildSelectContentFileQuery("abc.epub")
	require.NoError(t, err)

	assert.Equal(t, "SELECT data FROM content_files WHERE name = ?", query)
	assert.Equal(t, []any{"abc.epub"}, args)
}

func Test_buildListContentFilesQuery(t *testing.T) {
	query, args, err := buildListContentFilesQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT name FROM content_files ORDER BY name", query)
	assert.Empty(t, args)
}

func Test_upsertStateQuery_EncodesJSON(t *testing.T) {
	_, args, err := upsertStateQuery("positions", map[string]any{"a": 1})
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, `{"a":1}`, args[1])

	_, args, err = upsertStateQuery("lastSyncError", nil)
	require.NoError(t, err)
	assert.Equal(t, "null", args[1])
}
