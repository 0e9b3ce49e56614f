package get_dashboard_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/gourmethaven/reservation-service/internal/api/handlers"
	"github.com/gourmethaven/reservation-service/internal/domain"
	getDashboardStats "github.com/gourmethaven/reservation-service/internal/usecase/get_dashboard_stats"
)

type Handler struct {
	useCase GetDashboardStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard?month=YYYY-MM
// При отсутствии параметра используется текущий месяц.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format(domain.MonthFormat)
	}

	result, err := h.useCase.Execute(r.Context(), &getDashboardStats.Request{Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getDashboardStats.ErrInvalidMonth):
			h.logger.Warn("GET /dashboard - Invalid month %q: %v", month, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /dashboard - Failed to build stats for month=%s: %v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard - month=%s, total=%d, revenue=%.2f",
		month, result.Stats.TotalReservations, result.Stats.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
