package list_reservations

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

type ReservationsService interface {
	List(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
