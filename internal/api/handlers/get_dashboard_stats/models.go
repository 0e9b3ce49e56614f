package get_dashboard_stats

import (
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
	getDashboardStats "github.com/gourmethaven/reservation-service/internal/usecase/get_dashboard_stats"
)

// DishResponse HTTP model строки предзаказа
type DishResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ReservationResponse HTTP model бронирования
type ReservationResponse struct {
	ID           string         `json:"id"`
	CustomerName string         `json:"customerName"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Time         string         `json:"time"`
	Participants int            `json:"participants"`
	Dishes       []DishResponse `json:"dishes"`
	Status       string         `json:"status"`
	IsPriority   bool           `json:"isPriority"`
	TotalAmount  float64        `json:"totalAmount"`
	CreatedAt    string         `json:"createdAt"`
}

// StatsResponse HTTP model сводных показателей
type StatsResponse struct {
	TotalReservations    int     `json:"totalReservations"`
	PriorityReservations int     `json:"priorityReservations"`
	PendingApprovals     int     `json:"pendingApprovals"`
	TotalRevenue         float64 `json:"totalRevenue"`
}

// DashboardResponse HTTP response model дашборда
type DashboardResponse struct {
	Month    string                `json:"month"`
	Stats    StatsResponse         `json:"stats"`
	Pending  []ReservationResponse `json:"pending"`
	Approved []ReservationResponse `json:"approved"`
	Rejected []ReservationResponse `json:"rejected"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboardStats.Response) *DashboardResponse {
	return &DashboardResponse{
		Month: resp.Month,
		Stats: StatsResponse{
			TotalReservations:    resp.Stats.TotalReservations,
			PriorityReservations: resp.Stats.PriorityReservations,
			PendingApprovals:     resp.Stats.PendingApprovals,
			TotalRevenue:         resp.Stats.TotalRevenue,
		},
		Pending:  toReservationResponses(resp.Pending),
		Approved: toReservationResponses(resp.Approved),
		Rejected: toReservationResponses(resp.Rejected),
	}
}

func toReservationResponses(list []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		dishes := make([]DishResponse, 0, len(r.Dishes))
		for _, dish := range r.Dishes {
			dishes = append(dishes, DishResponse{
				ID:       dish.ID,
				Name:     dish.Name,
				Quantity: dish.Quantity,
				Price:    dish.Price,
			})
		}

		out = append(out, ReservationResponse{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			Phone:        r.Phone,
			Email:        r.Email,
			Time:         string(r.Time),
			Participants: r.Participants,
			Dishes:       dishes,
			Status:       string(r.Status),
			IsPriority:   r.IsPriority,
			TotalAmount:  r.TotalAmount,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
