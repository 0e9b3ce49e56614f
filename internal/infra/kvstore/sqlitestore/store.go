package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrOpen возвращается при ошибке открытия базы
	ErrOpen = errors.New("sqlitestore: failed to open database")

	// ErrRead возвращается при ошибке чтения namespace
	ErrRead = errors.New("sqlitestore: failed to read namespace")

	// ErrWrite возвращается при ошибке записи namespace
	ErrWrite = errors.New("sqlitestore: failed to write namespace")
)

const schema = `
CREATE TABLE IF NOT EXISTS namespaces (
	name       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store встраиваемое blob-хранилище поверх SQLite.
// Каждый namespace хранится одной строкой и перезаписывается целиком.
type Store struct {
	db *sql.DB
}

// New открывает базу по указанному пути и создает схему
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir: %v", ErrOpen, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrOpen, err)
	}

	return &Store{db: db}, nil
}

// Load читает содержимое namespace целиком.
// Отсутствующий namespace возвращает nil без ошибки.
func (s *Store) Load(ctx context.Context, namespace string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM namespaces WHERE name = ?`, namespace,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, namespace, err)
	}
	return data, nil
}

// Save перезаписывает namespace целиком (upsert одной строки)
func (s *Store) Save(ctx context.Context, namespace string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO namespaces (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		namespace, data,
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, namespace, err)
	}
	return nil
}

// Close закрывает базу
func (s *Store) Close() error {
	return s.db.Close()
}
