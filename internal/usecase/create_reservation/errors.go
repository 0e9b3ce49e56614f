package create_reservation

import "errors"

var (
	// ErrValidation возвращается при неполных или некорректных данных формы.
	// Состояние при этом не меняется.
	ErrValidation = errors.New("create_reservation: validation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
