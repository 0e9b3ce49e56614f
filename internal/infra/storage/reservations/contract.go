package reservations

import "context"

// Store интерфейс blob-хранилища для коллекции бронирований.
// Реализации: filestore, sqlitestore, pgstore.
type Store interface {
	// Load возвращает содержимое namespace целиком; nil без ошибки, если namespace отсутствует
	Load(ctx context.Context, namespace string) ([]byte, error)
	// Save перезаписывает namespace целиком
	Save(ctx context.Context, namespace string, data []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
