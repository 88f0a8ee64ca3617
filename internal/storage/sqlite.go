package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteBackend keeps snapshots in a single key/value table. It models
// the same durable local storage slot as the file backend; last write
// wins, no cross-process locking.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, wrap("open sqlite", err)
	}
	if err := db.Ping(); err != nil {
		return nil, wrap("connect sqlite", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, wrap("create snapshots table", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Close() error { return s.db.Close() }

func (s *SQLiteBackend) Read(key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		return nil, wrap("read "+key, err)
	}
	return payload, nil
}

func (s *SQLiteBackend) Write(key string, payload []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		key, string(payload))
	if err != nil {
		return wrap("write "+key, err)
	}
	return nil
}
