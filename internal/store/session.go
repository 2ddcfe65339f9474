package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session end reasons.
const (
	EndQuit    = "quit"
	EndCamera  = "camera"
	EndSignal  = "signal"
	EndUnknown = "unknown"
)

// Session is one run of the frame loop.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	EndReason string
}

// SessionRepository records session start and end.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Start inserts a new open session.
func (r *SessionRepository) Start() (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		sess.ID, sess.StartedAt,
	)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// End closes the session with the given reason.
func (r *SessionRepository) End(id, reason string) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, end_reason = ? WHERE id = ?`,
		time.Now(), reason, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	var ended sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at, end_reason FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.StartedAt, &ended, &sess.EndReason)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ended.Valid {
		sess.EndedAt = &ended.Time
	}
	return sess, nil
}
