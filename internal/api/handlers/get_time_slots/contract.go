package get_time_slots

import (
	"context"

	getTimeSlots "github.com/gourmethaven/reservation-service/internal/usecase/get_time_slots"
)

type GetTimeSlotsUseCase interface {
	Execute(ctx context.Context) *getTimeSlots.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
