package validate_customer

import (
	"errors"
	"net/http"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	createReservation "github.com/gourmethaven/reservation-service/internal/usecase/create_reservation"
)

const msgInvalidRequestBody = "invalid request body"

// CustomerInfoRequest HTTP request model (первый шаг мастера)
type CustomerInfoRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

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

// Handle POST /api/v1/reservations/customer-info
// Проверяет первый шаг мастера; успешная проверка позволяет клиенту
// перейти ко второму шагу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CustomerInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/customer-info - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.ValidateCustomerInfo(createReservation.CustomerInfo{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, createReservation.ErrValidation) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /reservations/customer-info - Unexpected error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
