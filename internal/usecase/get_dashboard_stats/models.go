package get_dashboard_stats

import "github.com/gourmethaven/reservation-service/internal/domain"

// Request модель запроса статистики дашборда
type Request struct {
	Month string // целевой месяц в формате YYYY-MM
}

// Stats сводные показатели дашборда.
// TotalReservations и PriorityReservations считаются по всей коллекции,
// PendingApprovals и TotalRevenue - по месячной выборке.
type Stats struct {
	TotalReservations    int
	PriorityReservations int
	PendingApprovals     int
	TotalRevenue         float64
}

// Response модель ответа: показатели и месячные выборки по вкладкам
type Response struct {
	Month    string
	Stats    Stats
	Pending  []domain.Reservation
	Approved []domain.Reservation
	Rejected []domain.Reservation
}
