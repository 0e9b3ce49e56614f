package get_dashboard_stats

import (
	"context"
	"fmt"
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// UseCase use case статистики дашборда.
// Показатели пересчитываются на каждый запрос от текущего состояния
// хранилища: кэширования и инкрементального обслуживания нет намеренно.
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute считает сводные показатели и месячные выборки по вкладкам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DashboardStats: month=%s", req.Month)

	// 1. Валидация месяца
	if _, err := time.Parse(domain.MonthFormat, req.Month); err != nil {
		uc.logger.Warn("DashboardStats: invalid month %q", req.Month)
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
	}

	// 2. Вся коллекция (новые первыми)
	list, err := uc.reservationRepo.List(ctx)
	if err != nil {
		uc.logger.Error("DashboardStats: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 3. Месячная выборка, разложенная по вкладкам
	filtered := uc.filterByMonth(list, req.Month)

	pending := make([]domain.Reservation, 0)
	approved := make([]domain.Reservation, 0)
	rejected := make([]domain.Reservation, 0)

	for _, reservation := range filtered {
		switch reservation.Status {
		case domain.StatusPending:
			pending = append(pending, reservation)
		case domain.StatusApproved:
			approved = append(approved, reservation)
		case domain.StatusRejected:
			rejected = append(rejected, reservation)
		}
	}

	// 4. Показатели: счетчики всей коллекции плюс месячные агрегаты
	stats := Stats{
		TotalReservations: len(list),
		PendingApprovals:  len(pending),
	}

	for _, reservation := range list {
		if reservation.IsPriority {
			stats.PriorityReservations++
		}
	}

	for _, reservation := range approved {
		stats.TotalRevenue += reservation.TotalAmount
	}

	uc.logger.Info("DashboardStats: total=%d, pending=%d, revenue=%.2f for month=%s",
		stats.TotalReservations, stats.PendingApprovals, stats.TotalRevenue, req.Month)

	return &Response{
		Month:    req.Month,
		Stats:    stats,
		Pending:  pending,
		Approved: approved,
		Rejected: rejected,
	}, nil
}
