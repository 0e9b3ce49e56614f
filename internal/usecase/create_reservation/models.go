package create_reservation

import (
	"time"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

// CustomerInfo данные первого шага мастера (личные данные)
type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

// Details данные второго шага мастера (детали брони).
// Participants = 0 - сентинел "использовать CustomParticipants";
// Dishes - выбор предзаказа: id продукта -> количество.
type Details struct {
	SelectedTime       string
	Participants       int
	CustomParticipants int
	Dishes             map[string]int
}

// Request модель запроса на создание бронирования (оба шага мастера)
type Request struct {
	Customer CustomerInfo
	Details  Details
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	CustomerName string
	Phone        string
	Email        string
	Time         string
	Participants int
	Dishes       []domain.Dish
	Status       string
	IsPriority   bool
	TotalAmount  float64
	CreatedAt    time.Time
}
