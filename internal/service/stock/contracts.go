package stock

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// ProductRepository интерфейс репозитория каталога продуктов
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
