package create_reservation

import (
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
	createReservation "github.com/gourmethaven/reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model: оба шага мастера одной отправкой
type CreateReservationRequest struct {
	Name               string         `json:"name"`
	Phone              string         `json:"phone"`
	Email              string         `json:"email"`
	Time               string         `json:"time"`               // "19:30"
	Participants       int            `json:"participants"`       // 1..16, 0 = custom
	CustomParticipants int            `json:"customParticipants"` // >= 17 при participants = 0
	Dishes             map[string]int `json:"dishes"`             // id продукта -> количество
}

// DishResponse HTTP model строки предзаказа
type DishResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ReservationResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Customer: createReservation.CustomerInfo{
			Name:  r.Name,
			Phone: r.Phone,
			Email: r.Email,
		},
		Details: createReservation.Details{
			SelectedTime:       r.Time,
			Participants:       r.Participants,
			CustomParticipants: r.CustomParticipants,
			Dishes:             r.Dishes,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Phone:        resp.Phone,
		Email:        resp.Email,
		Time:         resp.Time,
		Participants: resp.Participants,
		Dishes:       toDishResponses(resp.Dishes),
		Status:       resp.Status,
		IsPriority:   resp.IsPriority,
		TotalAmount:  resp.TotalAmount,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}

func toDishResponses(dishes []domain.Dish) []DishResponse {
	out := make([]DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		out = append(out, DishResponse{
			ID:       dish.ID,
			Name:     dish.Name,
			Quantity: dish.Quantity,
			Price:    dish.Price,
		})
	}
	return out
}
