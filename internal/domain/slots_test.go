package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmethaven/reservation-service/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("12:00"), slots[0])
	assert.Equal(t, types.TimeString("22:30"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		next, err := slots[i-1].AddMinutes(SlotStepMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, slots[i], "slot %d is not %d minutes after its predecessor", i, SlotStepMinutes)
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateTimeSlots(), GenerateTimeSlots())
}

func TestIsValidTimeSlot(t *testing.T) {
	tests := []struct {
		name string
		time types.TimeString
		want bool
	}{
		{name: "first slot", time: "12:00", want: true},
		{name: "last slot", time: "22:30", want: true},
		{name: "mid grid", time: "19:30", want: true},
		{name: "before opening", time: "11:30", want: false},
		{name: "after last slot", time: "23:00", want: false},
		{name: "off grid", time: "12:15", want: false},
		{name: "malformed", time: "noon", want: false},
		{name: "empty", time: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTimeSlot(tt.time))
		})
	}
}
