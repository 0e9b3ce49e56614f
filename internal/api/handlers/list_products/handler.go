package list_products

import (
	"net/http"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	"github.com/gourmethaven/reservation-service/internal/domain"
)

// ProductResponse HTTP model продукта каталога
type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ListProductsResponse HTTP response model каталога
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
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

// Handle GET /api/v1/products?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	list, err := h.service.List(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products - Returned %d products", len(list))
	handlers.RespondJSON(w, http.StatusOK, fromDomain(list))
}

func fromDomain(list []domain.Product) *ListProductsResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, product := range list {
		out = append(out, ProductResponse{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: product.Quantity,
			Price:    product.Price,
		})
	}
	return &ListProductsResponse{Products: out}
}
