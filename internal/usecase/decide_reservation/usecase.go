package decide_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/gourmethaven/reservation-service/internal/domain"
	reservationRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/reservations"
)

// UseCase use case решения оператора по бронированию.
// Переход статуса возможен только из pending; уведомление клиенту
// отправляется после успешной записи и не влияет на само решение.
type UseCase struct {
	reservationRepo ReservationRepository
	messageBuilder  MessageBuilder
	sender          NotificationSender
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	messageBuilder MessageBuilder,
	sender NotificationSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		messageBuilder:  messageBuilder,
		sender:          sender,
		logger:          logger,
	}
}

// Execute выполняет решение по бронированию.
// Отсутствующая или уже решенная бронь - молчаливый no-op (Updated=false):
// устаревшее состояние дашборда не должно приводить к ошибкам.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideReservation: id=%s, decision=%s", req.ReservationID, req.Decision)

	// 1. Валидация решения
	decision := domain.ReservationStatus(req.Decision)
	if !decision.IsDecision() {
		uc.logger.Warn("DecideReservation: invalid decision %q for id=%s", req.Decision, req.ReservationID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, req.Decision)
	}

	// 2. Получаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("DecideReservation: reservation id=%s not found, ignoring", req.ReservationID)
			return &Response{Updated: false}, nil
		}
		uc.logger.Error("DecideReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Переход только из pending
	if !reservation.CanBeDecided() {
		uc.logger.Warn("DecideReservation: reservation id=%s already %s, ignoring", reservation.ID, reservation.Status)
		return &Response{Updated: false}, nil
	}

	// 4. Записываем новый статус (меняется только поле статуса)
	if err := uc.reservationRepo.UpdateStatus(ctx, req.ReservationID, decision); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("DecideReservation: reservation id=%s vanished before update, ignoring", req.ReservationID)
			return &Response{Updated: false}, nil
		}
		uc.logger.Error("DecideReservation: failed to update status for id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("DecideReservation: reservation id=%s is now %s", reservation.ID, decision)

	// 5. Уведомление клиенту; неудача доставки не откатывает решение
	reservation.Status = decision
	sent := uc.notify(ctx, reservation, decision)

	return &Response{Updated: true, NotificationSent: sent}, nil
}

func (uc *UseCase) notify(ctx context.Context, reservation *domain.Reservation, decision domain.ReservationStatus) bool {
	email, err := uc.messageBuilder.BuildDecisionEmail(reservation, decision)
	if err != nil {
		uc.logger.Error("DecideReservation: failed to build email for id=%s: %v", reservation.ID, err)
		return false
	}

	if err := uc.sender.Send(ctx, email); err != nil {
		uc.logger.Warn("DecideReservation: failed to send email to %s for id=%s: %v",
			email.To, reservation.ID, err)
		return false
	}

	uc.logger.Info("DecideReservation: notification email sent to %s for id=%s", email.To, reservation.ID)
	return true
}
