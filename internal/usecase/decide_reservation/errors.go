package decide_reservation

import "errors"

var (
	// ErrInvalidDecision возвращается, когда запрошенный статус не является
	// решением оператора (approved или rejected)
	ErrInvalidDecision = errors.New("decide_reservation: invalid decision")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_reservation: internal error")
)
