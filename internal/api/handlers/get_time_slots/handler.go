package get_time_slots

import (
	"net/http"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context())

	slots := make([]string, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, slot.String())
	}

	handlers.RespondJSON(w, http.StatusOK, TimeSlotsResponse{Slots: slots})
}
