// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

// Package store persists the client session in a local SQLite database so
// that a login survives application restarts.
//
// The session lives in a single "session" table of name/value rows: one row
// for the serialised user profile and one for the access token. Both rows
// are written and removed together; a half-present session is treated as
// absent.
package store

import (
	"context"

	"github.com/dmrc-hht/keyadmin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository is durable storage for the client session.
type SessionRepository interface {
	// GetSession loads the stored session. Returns [ErrSessionNotFound]
	// when no complete session is stored.
	GetSession(ctx context.Context) (models.Session, error)

	// SaveSession stores the session, replacing any previous one. Both
	// halves are written atomically.
	SaveSession(ctx context.Context, session models.Session) error

	// DeleteSession removes any stored session. Deleting an absent session
	// is not an error.
	DeleteSession(ctx context.Context) error
}
