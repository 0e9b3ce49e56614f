package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, ReservationStatus("cancelled").IsValid())

	assert.False(t, StatusPending.IsDecision())
	assert.True(t, StatusApproved.IsDecision())
	assert.True(t, StatusRejected.IsDecision())
}

func TestReservation_CanBeDecided(t *testing.T) {
	r := Reservation{Status: StatusPending}
	assert.True(t, r.CanBeDecided())

	r.Status = StatusApproved
	assert.False(t, r.CanBeDecided())

	r.Status = StatusRejected
	assert.False(t, r.CanBeDecided())
}

func TestDishesTotal(t *testing.T) {
	dishes := []Dish{
		{ID: "1", Name: "Francesinha", Quantity: 2, Price: 15},
		{ID: "3", Name: "Special Steak", Quantity: 1, Price: 25},
	}

	assert.Equal(t, 55.0, DishesTotal(dishes))
	assert.Equal(t, 0.0, DishesTotal(nil))
}

func TestDefaultMenu(t *testing.T) {
	menu := DefaultMenu()

	assert.Len(t, menu, 3)
	for _, product := range menu {
		assert.True(t, product.InStock())
		assert.Equal(t, 20, product.Quantity)
	}
}
