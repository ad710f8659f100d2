package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmrc-hht/keyadmin/internal/logger"
	"github.com/dmrc-hht/keyadmin/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session table holds at most two rows, one for the
// serialised user profile and one for the access token; both are read and
// written together so callers never observe a half-session.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// GetSession loads both session entries and assembles a [models.Session].
// A missing table row for either entry yields [ErrSessionNotFound]: a
// half-written session is as good as no session.
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("build select session query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error querying session entries")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var session models.Session
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning error")
			return models.Session{}, err
		}

		switch name {
		case sessionEntryUser:
			session.User = json.RawMessage(value)
		case sessionEntryAccessToken:
			session.AccessToken = value
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error iterating session entries")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if !session.IsComplete() {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// SaveSession upserts both session entries inside a single transaction.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if !session.IsComplete() {
		return fmt.Errorf("refusing to save incomplete session")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error starting transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	entries := []struct {
		name  string
		value string
	}{
		{name: sessionEntryUser, value: string(session.User)},
		{name: sessionEntryAccessToken, value: session.AccessToken},
	}

	for _, entry := range entries {
		query, args, err := buildUpsertSessionEntryQuery(entry.name, entry.value)
		if err != nil {
			return fmt.Errorf("build upsert session query: %w", err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*sessionRepository.SaveSession").Str("entry", entry.name).Msg("error upserting session entry")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error committing transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteSession removes all session rows. Deleting when nothing is stored
// succeeds.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session entries")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
