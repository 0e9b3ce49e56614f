package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/gourmethaven/reservation-service/pkg/psqlbuilder"
)

var (
	// ErrMigrate возвращается при ошибке создания схемы
	ErrMigrate = errors.New("pgstore: failed to create schema")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pgstore: failed to build query")

	// ErrRead возвращается при ошибке чтения namespace
	ErrRead = errors.New("pgstore: failed to read namespace")

	// ErrWrite возвращается при ошибке записи namespace
	ErrWrite = errors.New("pgstore: failed to write namespace")
)

const schema = `
CREATE TABLE IF NOT EXISTS namespaces (
	name       TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// Store blob-хранилище поверх Postgres.
// Каждый namespace хранится одной JSONB строкой и перезаписывается целиком,
// построчных обновлений нет намеренно: модель хранения сервиса -
// read-modify-write всей коллекции.
type Store struct {
	db *sql.DB
}

// New создает хранилище поверх открытого соединения и создает схему
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMigrate, err)
	}
	return &Store{db: db}, nil
}

// Load читает содержимое namespace целиком.
// Отсутствующий namespace возвращает nil без ошибки.
func (s *Store) Load(ctx context.Context, namespace string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("data").
		From("namespaces").
		Where(squirrel.Eq{"name": namespace}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
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
	query, args, err := psqlbuilder.Insert("namespaces").
		Columns("name", "data").
		Values(namespace, data).
		Suffix("ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, namespace, err)
	}
	return nil
}

// Close для pgstore ничего не делает: соединением владеет вызывающая сторона
func (s *Store) Close() error {
	return nil
}
