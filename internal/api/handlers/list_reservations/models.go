package list_reservations

import (
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
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

// ListReservationsResponse HTTP response model списка бронирований
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomain конвертирует доменные бронирования в HTTP response
func FromDomain(list []domain.Reservation) *ListReservationsResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, reservation := range list {
		out = append(out, toReservationResponse(reservation))
	}
	return &ListReservationsResponse{Reservations: out}
}

func toReservationResponse(r domain.Reservation) ReservationResponse {
	dishes := make([]DishResponse, 0, len(r.Dishes))
	for _, dish := range r.Dishes {
		dishes = append(dishes, DishResponse{
			ID:       dish.ID,
			Name:     dish.Name,
			Quantity: dish.Quantity,
			Price:    dish.Price,
		})
	}

	return ReservationResponse{
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
	}
}
