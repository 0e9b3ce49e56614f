package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrRead возвращается при ошибке чтения файла хранилища
	ErrRead = errors.New("filestore: failed to read namespace file")

	// ErrWrite возвращается при ошибке записи файла хранилища
	ErrWrite = errors.New("filestore: failed to write namespace file")
)

// Store файловое blob-хранилище: один JSON файл на namespace.
// Запись атомарная (temp файл + rename), чтение и запись сериализованы
// мьютексом в пределах процесса.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New создает хранилище в указанной директории
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrWrite, dir, err)
	}
	return &Store{dir: dir}, nil
}

// Load читает содержимое namespace целиком.
// Отсутствующий namespace возвращает nil без ошибки.
func (s *Store) Load(ctx context.Context, namespace string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(namespace))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, namespace, err)
	}
	return data, nil
}

// Save перезаписывает namespace целиком
func (s *Store) Save(ctx context.Context, namespace string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(namespace)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, namespace, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, namespace, err)
	}
	return nil
}

// Close для файлового хранилища ничего не делает
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}
