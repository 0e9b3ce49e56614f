package validate_customer

import (
	createReservation "github.com/gourmethaven/reservation-service/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	ValidateCustomerInfo(info createReservation.CustomerInfo) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
