package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/gourmethaven/reservation-service/internal/domain"
	reservationRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/reservations"
)

// Service сервис чтения и удаления бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// List возвращает бронирования (новые первыми), опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	if status != nil && !status.IsValid() {
		s.logger.Warn("List: invalid status filter %q", *status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
	}

	list, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if status == nil {
		return list, nil
	}

	filtered := make([]domain.Reservation, 0, len(list))
	for _, reservation := range list {
		if reservation.Status == *status {
			filtered = append(filtered, reservation)
		}
	}
	return filtered, nil
}

// Remove удаляет бронирование безвозвратно.
// Подтверждение оператора происходит выше по стеку; отсутствующий id -
// молчаливый no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	s.logger.Info("Remove: removing reservation id=%s", id)

	err := s.reservationRepo.Remove(ctx, id)
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("Remove: reservation id=%s not found, ignoring", id)
		return nil
	}
	if err != nil {
		s.logger.Error("Remove: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: reservation id=%s removed", id)
	return nil
}
