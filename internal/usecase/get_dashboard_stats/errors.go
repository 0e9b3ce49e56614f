package get_dashboard_stats

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном формате месяца (ожидается YYYY-MM)
	ErrInvalidMonth = errors.New("get_dashboard_stats: invalid month")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_dashboard_stats: internal error")
)
