package decide_reservation

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/domain"
	"github.com/gourmethaven/reservation-service/internal/notifier"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

// MessageBuilder интерфейс сборки письма о решении
type MessageBuilder interface {
	BuildDecisionEmail(reservation *domain.Reservation, decision domain.ReservationStatus) (notifier.Email, error)
}

// NotificationSender интерфейс доставки уведомлений
type NotificationSender interface {
	Send(ctx context.Context, email notifier.Email) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
