package domain

import (
	"time"

	"github.com/gourmethaven/reservation-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRejected ReservationStatus = "rejected"
)

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsDecision returns true if the status is an operator decision
func (s ReservationStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Dish represents a single pre-ordered menu line on a reservation
type Dish struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// LineTotal returns the cost of this line
func (d Dish) LineTotal() float64 {
	return float64(d.Quantity) * d.Price
}

// Reservation represents a customer's request for a table.
// TotalAmount is a snapshot computed once at creation from Dishes and is
// never recomputed afterwards.
type Reservation struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Time         types.TimeString  `json:"time"`
	Participants int               `json:"participants"`
	Dishes       []Dish            `json:"dishes"`
	Status       ReservationStatus `json:"status"`
	IsPriority   bool              `json:"isPriority"`
	TotalAmount  float64           `json:"totalAmount"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// IsPending returns true if the reservation still awaits an operator decision
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// CanBeDecided returns true if the reservation may transition to a decision.
// Decisions are only allowed out of the pending state.
func (r *Reservation) CanBeDecided() bool {
	return r.Status == StatusPending
}

// HasDishes returns true if the reservation carries a pre-order
func (r *Reservation) HasDishes() bool {
	return len(r.Dishes) > 0
}

// DishesTotal sums quantity × price over the given dishes
func DishesTotal(dishes []Dish) float64 {
	var total float64
	for _, d := range dishes {
		total += d.LineTotal()
	}
	return total
}
