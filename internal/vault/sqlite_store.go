package vault

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps documents and resources in a single SQLite database,
// for users who prefer one portable file over a directory of JSON.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite-backed vault at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite vault: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite vault: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) ReadDocument(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM documents WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", key, err)
	}
	return data, nil
}

func (s *SQLiteStore) WriteDocument(key string, data []byte) error {
	_, err := s.db.Exec(`
INSERT INTO documents(key, data, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at
`, key, data)
	if err != nil {
		return fmt.Errorf("write document %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) StoreBinaryResource(data []byte, suggestedName string) (string, error) {
	if suggestedName == "" {
		return "", fmt.Errorf("resource name is required")
	}
	_, err := s.db.Exec(`
INSERT INTO resources(name, data)
VALUES(?, ?)
ON CONFLICT(name) DO UPDATE SET data=excluded.data
`, suggestedName, data)
	if err != nil {
		return "", fmt.Errorf("store resource %q: %w", suggestedName, err)
	}
	return suggestedName, nil
}

func (s *SQLiteStore) ReadResource(handle string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM resources WHERE name = ?`, handle).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("resource %q: %w", handle, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read resource %q: %w", handle, err)
	}
	return data, nil
}

func (s *SQLiteStore) DeleteResource(handle string) error {
	if _, err := s.db.Exec(`DELETE FROM resources WHERE name = ?`, handle); err != nil {
		return fmt.Errorf("delete resource %q: %w", handle, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
