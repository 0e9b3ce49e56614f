package get_time_slots

import (
	"context"

	"github.com/gourmethaven/reservation-service/internal/domain"
	"github.com/gourmethaven/reservation-service/pkg/types"
)

// Response модель ответа со списком доступных времен
type Response struct {
	Slots []types.TimeString
}

// UseCase use case получения временных слотов окна обслуживания.
// Список фиксированный и детерминированный: ошибок здесь не бывает.
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute возвращает упорядоченный список слотов
func (uc *UseCase) Execute(ctx context.Context) *Response {
	slots := domain.GenerateTimeSlots()
	uc.logger.Info("GetTimeSlots: generated %d slots", len(slots))
	return &Response{Slots: slots}
}
