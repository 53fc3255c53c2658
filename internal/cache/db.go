// Package cache persists the path→comment-id lookup table produced by each
// reconciliation, so paths quoted in a summary can later be resolved back to
// the comments they came from.
package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database holding reconciled path tables.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database and runs migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS threads (
			story_id INTEGER PRIMARY KEY,
			comment_count INTEGER NOT NULL,
			reconciled_at INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS paths (
			story_id INTEGER NOT NULL,
			path TEXT NOT NULL,
			comment_id INTEGER NOT NULL,
			PRIMARY KEY (story_id, path)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_paths_comment ON paths(comment_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
