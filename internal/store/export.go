package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Export records one saved drawing.
type Export struct {
	ID        string
	SessionID string
	Path      string
	Width     int
	Height    int
	Color     string
	CreatedAt time.Time
}

// ExportRepository provides access to the export history.
type ExportRepository struct {
	db *sql.DB
}

// Exports returns the export repository for this store.
func (s *Store) Exports() *ExportRepository {
	return &ExportRepository{db: s.db}
}

// Create inserts e, assigning an ID when it has none.
// An empty SessionID is stored as NULL.
func (r *ExportRepository) Create(e *Export) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO exports (id, session_id, path, width, height, color, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, nullable(e.SessionID), e.Path, e.Width, e.Height, e.Color, e.CreatedAt,
	)
	return err
}

// GetByID retrieves an export by its ID.
func (r *ExportRepository) GetByID(id string) (*Export, error) {
	e := &Export{}
	var session sql.NullString

	err := r.db.QueryRow(
		`SELECT id, session_id, path, width, height, color, created_at
		 FROM exports WHERE id = ?`,
		id,
	).Scan(&e.ID, &session, &e.Path, &e.Width, &e.Height, &e.Color, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e.SessionID = session.String
	return e, nil
}

// List returns every export, newest first.
func (r *ExportRepository) List() ([]*Export, error) {
	return r.query(
		`SELECT id, session_id, path, width, height, color, created_at
		 FROM exports ORDER BY created_at DESC, rowid DESC`,
	)
}

// ListBySession returns the exports of one session, newest first.
func (r *ExportRepository) ListBySession(sessionID string) ([]*Export, error) {
	return r.query(
		`SELECT id, session_id, path, width, height, color, created_at
		 FROM exports WHERE session_id = ? ORDER BY created_at DESC, rowid DESC`,
		sessionID,
	)
}

func (r *ExportRepository) query(q string, args ...any) ([]*Export, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []*Export
	for rows.Next() {
		e := &Export{}
		var session sql.NullString

		if err := rows.Scan(&e.ID, &session, &e.Path, &e.Width, &e.Height, &e.Color, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.SessionID = session.String
		exports = append(exports, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exports, nil
}

// Delete removes an export record. The image file is left alone.
func (r *ExportRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM exports WHERE id = ?`, id)
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

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
