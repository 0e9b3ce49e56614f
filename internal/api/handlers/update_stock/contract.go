package update_stock

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

type StockService interface {
	UpdateStock(ctx context.Context, id string, action string) (*domain.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
