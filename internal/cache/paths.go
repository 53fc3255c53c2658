package cache

import (
	"database/sql"
	"fmt"
	"time"

	"hnrecap/internal/thread"
)

// PutPathTable replaces the stored path table for a story with the result of
// a fresh reconciliation.
func (d *DB) PutPathTable(storyID int, comments []*thread.FlatComment) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM paths WHERE story_id = ?`, storyID); err != nil {
		return fmt.Errorf("clearing old paths: %w", err)
	}
	for _, c := range comments {
		if _, err := tx.Exec(`INSERT INTO paths (story_id, path, comment_id) VALUES (?, ?, ?)`,
			storyID, c.Path, c.ID); err != nil {
			return fmt.Errorf("storing path %s: %w", c.Path, err)
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO threads (story_id, comment_count, reconciled_at)
		VALUES (?, ?, ?)`, storyID, len(comments), time.Now().Unix()); err != nil {
		return fmt.Errorf("storing thread record: %w", err)
	}

	return tx.Commit()
}

// ResolvePath returns the comment id a path pointed at when the story was
// last reconciled. The second return is false when the path is unknown.
func (d *DB) ResolvePath(storyID int, path string) (int, bool, error) {
	row := d.db.QueryRow(`SELECT comment_id FROM paths WHERE story_id = ? AND path = ?`, storyID, path)

	var id int
	err := row.Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// ThreadInfo reports when a story was last reconciled and with how many
// comments. The second return is false when the story has never been stored.
func (d *DB) ThreadInfo(storyID int) (count int, reconciledAt time.Time, ok bool, err error) {
	row := d.db.QueryRow(`SELECT comment_count, reconciled_at FROM threads WHERE story_id = ?`, storyID)

	var at int64
	err = row.Scan(&count, &at)
	if err == sql.ErrNoRows {
		return 0, time.Time{}, false, nil
	}
	if err != nil {
		return 0, time.Time{}, false, err
	}
	return count, time.Unix(at, 0), true, nil
}
