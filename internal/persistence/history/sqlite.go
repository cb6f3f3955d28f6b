// Package history keeps a small sqlite index of every save the editor has
// written: enough to find the latest edit of a file and to audit what was
// changed when.
package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded save.
type Entry struct {
	ID      string
	Path    string
	Bytes   int64
	SHA256  string
	Credits int64
	SavedAt time.Time
}

// NewEntry builds an Entry for a save just written: data is the encoded byte
// stream, credits the balance at save time.
func NewEntry(path string, data []byte, credits int64) Entry {
	sum := sha256.Sum256(data)
	return Entry{
		ID:      uuid.NewString(),
		Path:    path,
		Bytes:   int64(len(data)),
		SHA256:  hex.EncodeToString(sum[:]),
		Credits: credits,
		SavedAt: time.Now().UTC(),
	}
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path. The editor is a single
// synchronous writer, so the store runs one connection and plain direct
// statements.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS saves (
	id        TEXT PRIMARY KEY,
	path      TEXT NOT NULL,
	bytes     INTEGER NOT NULL,
	sha256    TEXT NOT NULL,
	credits   INTEGER NOT NULL,
	saved_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at DESC);
`
	_, err := db.Exec(schema)
	return err
}

// RecordSave inserts one entry.
func (s *Store) RecordSave(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (id, path, bytes, sha256, credits, saved_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Path, e.Bytes, e.SHA256, e.Credits, e.SavedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record save: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, bytes, sha256, credits, saved_at FROM saves ORDER BY saved_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var savedAt string
		if err := rows.Scan(&e.ID, &e.Path, &e.Bytes, &e.SHA256, &e.Credits, &savedAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, savedAt)
		if err != nil {
			return nil, fmt.Errorf("saved_at %q: %w", savedAt, err)
		}
		e.SavedAt = t
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Close() error { return s.db.Close() }
