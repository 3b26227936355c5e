package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	tableLocalState   = "local_state"
	tableContentFiles = "content_files"
)

// sqlite uses "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectAllStateQuery() (string, []any, error) {
	return psql.
		Select("key", "value").
		From(tableLocalState).
		OrderBy("key").
		ToSql()
}

func buildUpsertStateQuery(key, value string) (string, []any, error) {
	return psql.
		Insert(tableLocalState).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteAllStateQuery() (string, []any, error) {
	return psql.
		Delete(tableLocalState).
		ToSql()
}

func buildSelectContentFileQuery(name string) (string, []any, error) {
	return psql.
		Select("data").
		From(tableContentFiles).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertContentFileQuery(name string, data []byte, updatedAt int64) (string, []any, error) {
	return psql.
		Insert(tableContentFiles).
		Columns("name", "data", "updated_at").
		Values(name, data, updatedAt).
		Suffix("ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
}

func buildListContentFilesQuery() (string, []any, error) {
	return psql.
		Select("name").
		From(tableContentFiles).
		OrderBy("name").
		ToSql()
}
