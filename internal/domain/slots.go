package domain

import "github.com/gourmethaven/reservation-service/pkg/types"

// GenerateTimeSlots returns the ordered list of bookable reservation times
// for a single service window: 12:00 through 22:30 inclusive, every 30
// minutes. The function is pure and deterministic.
func GenerateTimeSlots() []types.TimeString {
	last := types.TimeString(LastSlotTime)

	slots := make([]types.TimeString, 0, 22)
	current := types.TimeString(OpeningTime)

	for !current.IsAfter(last) {
		slots = append(slots, current)

		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// IsValidTimeSlot reports whether t is one of the generated slots
func IsValidTimeSlot(t types.TimeString) bool {
	for _, slot := range GenerateTimeSlots() {
		if slot == t {
			return true
		}
	}
	return false
}
