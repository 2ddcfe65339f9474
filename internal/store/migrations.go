package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per run of the frame loop
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			end_reason TEXT NOT NULL DEFAULT ''
		)`,

		// Exports table - one row per saved drawing
		`CREATE TABLE IF NOT EXISTS exports (
			id TEXT PRIMARY KEY,
			session_id TEXT REFERENCES sessions(id) ON DELETE CASCADE,
			path TEXT NOT NULL,
			width INTEGER NOT NULL CHECK(width > 0),
			height INTEGER NOT NULL CHECK(height > 0),
			color TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_exports_session_id ON exports(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
