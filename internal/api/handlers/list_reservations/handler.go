package list_reservations

import (
	"errors"
	"net/http"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	"github.com/gourmethaven/reservation-service/internal/domain"
	reservationsService "github.com/gourmethaven/reservation-service/internal/service/reservations"
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

// Handle GET /api/v1/reservations?status=pending|approved|rejected
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var statusFilter *domain.ReservationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ReservationStatus(raw)
		statusFilter = &status
	}

	list, err := h.service.List(r.Context(), statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("GET /reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Returned %d reservations", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(list))
}
