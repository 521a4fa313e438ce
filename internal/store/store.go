// Package store keeps a log of rendered roll replies in SQLite.
//
// Only the rendered text is stored. Tables are parsed fresh from their
// source text every time and never persisted.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS rolls (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at INTEGER NOT NULL,
	origin     TEXT    NOT NULL,
	report     TEXT    NOT NULL,
	ok         INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS rolls_created_at ON rolls (created_at);
`

// Entry is one recorded reply.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Origin    string
	Report    string
	OK        bool // false when nothing could be rolled
}

// Store is a roll log backed by a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite serialises writers anyway; one connection avoids busy errors.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores e and returns its id. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO rolls (created_at, origin, report, ok) VALUES (?, ?, ?, ?)",
		e.CreatedAt.UnixNano(), e.Origin, e.Report, boolToInt(e.OK))
	if err != nil {
		return 0, fmt.Errorf("recording roll: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading roll id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, origin, report, ok FROM rolls ORDER BY created_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying rolls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created int64
			ok      int
		)
		if err := rows.Scan(&e.ID, &created, &e.Origin, &e.Report, &ok); err != nil {
			return nil, fmt.Errorf("scanning roll: %w", err)
		}
		e.CreatedAt = time.Unix(0, created)
		e.OK = ok != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rolls: %w", err)
	}
	return entries, nil
}

// Prune deletes all but the newest keep entries and returns how many went.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM rolls WHERE id NOT IN (
			SELECT id FROM rolls ORDER BY created_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning rolls: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned rolls: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
