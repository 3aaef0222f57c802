package store

import (
	"database/sql"
	"fmt"
)

func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			dataset     TEXT NOT NULL,
			axiom_ratio REAL NOT NULL,
			total       INTEGER NOT NULL DEFAULT 0,
			correct     INTEGER NOT NULL DEFAULT 0,
			accuracy    REAL NOT NULL DEFAULT 0,
			started_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS run_samples (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			hash      TEXT NOT NULL,
			expected  TEXT NOT NULL,
			predicted TEXT NOT NULL,
			score     REAL NOT NULL,
			won       INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_run_samples_run ON run_samples(run_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}
	return nil
}
