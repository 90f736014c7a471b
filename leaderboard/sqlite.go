package leaderboard

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createKVTableSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const upsertKVSQL = `
INSERT INTO kv (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET
	value = excluded.value,
	updated_at = CURRENT_TIMESTAMP;
`

// SQLiteStore keeps the serialized board as one row of a key-value table.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens (or creates) the database at path and prepares the kv table.
func OpenSQLite(path, key string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if _, err := db.Exec(createKVTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}
	if key == "" {
		key = DefaultKey
	}
	return &SQLiteStore{db: db, key: key}, nil
}

func (s *SQLiteStore) Read() (string, error) {
	var text string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", s.key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", s.key, err)
	}
	return text, nil
}

func (s *SQLiteStore) Write(text string) error {
	if _, err := s.db.Exec(upsertKVSQL, s.key, text); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
