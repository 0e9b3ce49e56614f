package domain

// Service window for reservation time slots
const (
	OpeningTime     = "12:00" // first bookable slot
	LastSlotTime    = "22:30" // last bookable slot, inclusive
	SlotStepMinutes = 30
)

// Participant limits.
// The intake form enumerates 1..16; larger parties go through the custom
// participant count, which starts at 17. Zero is the sentinel meaning
// "use the custom count".
const (
	MinParticipants            = 1
	MaxEnumeratedParticipants  = 16
	MinCustomParticipants      = 17
	CustomParticipantsSentinel = 0
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	MonthFormat    = "2006-01"          // YYYY-MM
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Persistence namespaces.
// Each namespace holds one JSON array, read and written as a whole.
const (
	NamespaceReservations = "reservations"
	NamespaceProducts     = "products"
)
