package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS picks (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			start_date DATE NOT NULL,
			end_date   DATE NOT NULL,
			note       TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK(end_date >= start_date)
		);

		CREATE INDEX IF NOT EXISTS idx_picks_created ON picks(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating picks table: %w", err)
	}

	return nil
}
