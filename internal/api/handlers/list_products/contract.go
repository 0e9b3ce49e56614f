package list_products

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

type StockService interface {
	List(ctx context.Context, search string) ([]domain.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
