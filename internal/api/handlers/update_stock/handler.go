package update_stock

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	stockService "github.com/gourmethaven/reservation-service/internal/service/stock"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgProductNotFound    = "product not found"
)

// UpdateStockRequest HTTP request model изменения остатка
type UpdateStockRequest struct {
	Action string `json:"action"` // "add" или "remove"
}

// ProductResponse HTTP response model продукта после изменения
type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Handler struct {
	service StockService
	logger  Logger
}

func NewHandler(service StockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/products/{id}/stock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req UpdateStockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /products/{id}/stock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	product, err := h.service.UpdateStock(r.Context(), productID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, stockService.ErrInvalidAction):
			h.logger.Warn("PATCH /products/{id}/stock - Invalid action for id=%s: %v",
				productID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, stockService.ErrProductNotFound):
			h.logger.Warn("PATCH /products/{id}/stock - Product id=%s not found", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		default:
			h.logger.Error("PATCH /products/{id}/stock - Failed to update id=%s: %v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /products/{id}/stock - id=%s, action=%s, stock=%d",
		productID, req.Action, product.Quantity)
	handlers.RespondJSON(w, http.StatusOK, ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Quantity: product.Quantity,
		Price:    product.Price,
	})
}
