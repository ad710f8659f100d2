// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Session entry names. The session table holds exactly one row per entry.
const (
	sessionEntryUser        = "user"
	sessionEntryAccessToken = "access_token"
)

func buildSelectSessionQuery() (string, []any, error) {
	return sq.
		Select("name", "value").
		From("session").
		Where(sq.Eq{"name": []string{sessionEntryUser, sessionEntryAccessToken}}).
		ToSql()
}

func buildUpsertSessionEntryQuery(name, value string) (string, []any, error) {
	return sq.
		Insert("session").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sq.
		Delete("session").
		ToSql()
}
