package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	createReservation "github.com/gourmethaven/reservation-service/internal/usecase/create_reservation"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrValidation):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, customer=%q",
		result.ID, result.CustomerName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
