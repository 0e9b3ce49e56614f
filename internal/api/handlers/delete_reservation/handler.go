package delete_reservation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), reservationID); err != nil {
		h.logger.Error("DELETE /reservations/{id} - Failed to remove id=%s: %v",
			reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - id=%s removed", reservationID)
	handlers.RespondNoContent(w)
}
