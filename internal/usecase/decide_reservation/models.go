package decide_reservation

// Request модель запроса на решение по бронированию
type Request struct {
	ReservationID string
	Decision      string // "approved" или "rejected"
}

// Response модель результата решения.
// Updated=false означает, что переход не состоялся (бронь не найдена
// или уже решена) - это не ошибка.
type Response struct {
	Updated          bool
	NotificationSent bool
}
