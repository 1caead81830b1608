package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/invoicify"
	_ "github.com/mattn/go-sqlite3"
)

const createBlobs = `
CREATE TABLE IF NOT EXISTS blobs (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// SQLite stores blobs in a single table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database file at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("cannot create %q: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to database %q: %w", path, err)
	}
	if _, err := db.Exec(createBlobs); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create tables in %q: %w", path, err)
	}
	return &SQLite{db: db}, nil
}

// Load implements invoicify.BlobStore.
func (s *SQLite) Load(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, invoicify.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", key, err)
	}
	return data, nil
}

// Save implements invoicify.BlobStore.
func (s *SQLite) Save(key string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, data)
	if err != nil {
		return fmt.Errorf("cannot save %q: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }
