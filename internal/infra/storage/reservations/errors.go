package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено в коллекции
	ErrReservationNotFound = errors.New("reservations.repository: reservation not found")

	// ErrPersistence возвращается при ошибке чтения или записи хранилища
	ErrPersistence = errors.New("reservations.repository: persistence failure")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("reservations.repository: failed to encode collection")
)
