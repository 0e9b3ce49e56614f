package decide_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	decideReservation "github.com/gourmethaven/reservation-service/internal/usecase/decide_reservation"
)

const msgInvalidRequestBody = "invalid request body"

// DecisionRequest HTTP request model решения оператора
type DecisionRequest struct {
	Status string `json:"status"` // "approved" или "rejected"
}

// DecisionResponse HTTP response model результата решения
type DecisionResponse struct {
	Updated          bool `json:"updated"`
	NotificationSent bool `json:"notificationSent"`
}

type Handler struct {
	useCase DecideReservationUseCase
	logger  Logger
}

func NewHandler(useCase DecideReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["id"]

	var req DecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &decideReservation.Request{
		ReservationID: reservationID,
		Decision:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, decideReservation.ErrInvalidDecision):
			h.logger.Warn("PATCH /reservations/{id}/decision - Invalid decision for id=%s: %v",
				reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/decision - Failed to decide id=%s: %v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/decision - id=%s, status=%s, updated=%t",
		reservationID, req.Status, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, DecisionResponse{
		Updated:          result.Updated,
		NotificationSent: result.NotificationSent,
	})
}
