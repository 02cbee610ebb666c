package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/omarHussamm/mf-orders-app/internal/app/analytics"
)

type statusShareResponse struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type summaryResponse struct {
	TotalOrders       int                   `json:"total_orders"`
	TotalRevenue      float64               `json:"total_revenue"`
	AverageOrderValue float64               `json:"average_order_value"`
	StatusBreakdown   []statusShareResponse `json:"status_breakdown"`
	CancellationRate  float64               `json:"cancellation_rate"`
}

type usecase interface {
	Summary(ctx context.Context) (*analytics.Summary, error)
}

type Handler struct {
	uc  usecase
	log *zap.Logger
}

func NewAnalyticsHandler(uc usecase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, log: log}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.uc.Summary(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		TotalOrders:       summary.TotalOrders,
		TotalRevenue:      summary.TotalRevenue,
		AverageOrderValue: summary.AverageOrderValue,
		StatusBreakdown:   make([]statusShareResponse, 0, len(summary.StatusBreakdown)),
		CancellationRate:  summary.CancellationRate,
	}
	for _, share := range summary.StatusBreakdown {
		resp.StatusBreakdown = append(resp.StatusBreakdown, statusShareResponse{
			Status:  string(share.Status),
			Count:   share.Count,
			Percent: share.Percent,
		})
	}

	b, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *Handler) RegisterRoutes() func(mux *chi.Mux) {
	return func(mux *chi.Mux) {
		mux.Get("/api/analytics", h.summary)
	}
}
