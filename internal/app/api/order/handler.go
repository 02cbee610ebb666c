package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
	"github.com/omarHussamm/mf-orders-app/internal/app/order"
)

type itemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type orderResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"order_number"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Items        []itemResponse  `json:"items"`
	Total        float64         `json:"total"`
	Address      addressResponse `json:"shipping_address"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type listResponse struct {
	Orders []orderResponse `json:"orders"`
	Counts map[string]int  `json:"counts"`
}

type timelineEntryResponse struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
	Date      string `json:"date,omitempty"`
}

type detailResponse struct {
	Order    orderResponse           `json:"order"`
	Timeline []timelineEntryResponse `json:"timeline"`
}

type notFoundResponse struct {
	Message string `json:"message"`
	ListURL string `json:"list_url"`
}

type createItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type createRequest struct {
	CustomerID string               `json:"customer_id"`
	Items      []createItemRequest  `json:"items"`
	Address    createAddressRequest `json:"shipping_address"`
}

type createResponse struct {
	Order    orderResponse `json:"order"`
	Subtotal float64       `json:"subtotal"`
	Tax      float64       `json:"tax"`
	Total    float64       `json:"total"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type usecase interface {
	List(ctx context.Context, status, term string) ([]*domain.Order, map[string]int, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, req order.CreateRequest) (*domain.Order, order.Summary, error)
	UpdateStatus(ctx context.Context, id string, to domain.Status) (*domain.Order, error)
	Cancel(ctx context.Context, id string) (*domain.Order, error)
}

type Handler struct {
	uc  usecase
	log *zap.Logger
}

func NewOrderHandler(uc usecase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, log: log}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = order.StatusAll
	}
	term := r.URL.Query().Get("q")

	orders, counts, err := h.uc.List(r.Context(), status, term)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := listResponse{
		Orders: make([]orderResponse, 0, len(orders)),
		Counts: counts,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, err := h.uc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFoundOrder) {
			// Empty presentation state with a way back to the list,
			// not an error trace.
			writeJSON(w, http.StatusNotFound, notFoundResponse{
				Message: "The order you're looking for doesn't exist.",
				ListURL: "/api/orders",
			})
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := detailResponse{Order: toOrderResponse(o)}
	for _, e := range order.Timeline(o) {
		entry := timelineEntryResponse{
			Status:    string(e.Status),
			Label:     e.Label,
			Completed: e.Completed,
			Current:   e.Current,
		}
		if e.Date != nil {
			entry.Date = e.Date.Format(time.RFC3339)
		}
		resp.Timeline = append(resp.Timeline, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	items := make([]order.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.ItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	o, summary, err := h.uc.Create(r.Context(), order.CreateRequest{
		CustomerID: req.CustomerID,
		Items:      items,
		Address: domain.ShippingAddress{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		},
	})
	if err != nil {
		if isValidation(err) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Info(
		"order created",
		zap.String("id", o.ID),
		zap.String("number", o.Number),
		zap.Float64("total", o.Total),
	)

	writeJSON(w, http.StatusCreated, createResponse{
		Order:    toOrderResponse(o),
		Subtotal: summary.Subtotal,
		Tax:      summary.Tax,
		Total:    summary.Total,
	})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	to, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	h.applyTransition(w, r, func(ctx context.Context) (*domain.Order, error) {
		return h.uc.UpdateStatus(ctx, id, to)
	})
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.applyTransition(w, r, func(ctx context.Context) (*domain.Order, error) {
		return h.uc.Cancel(ctx, id)
	})
}

func (h *Handler) applyTransition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context) (*domain.Order, error)) {
	o, err := apply(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFoundOrder) {
			writeJSON(w, http.StatusNotFound, notFoundResponse{
				Message: "The order you're looking for doesn't exist.",
				ListURL: "/api/orders",
			})
			return
		} else if errors.Is(err, domain.ErrInvalidTransition) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Info(
		"order status changed",
		zap.String("id", o.ID),
		zap.String("status", string(o.Status)),
	)

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func (h *Handler) RegisterRoutes() func(mux *chi.Mux) {
	return func(mux *chi.Mux) {
		mux.Get("/api/orders", h.list)
		mux.Post("/api/orders", h.create)
		mux.Get("/api/orders/{id}", h.detail)
		mux.Post("/api/orders/{id}/status", h.updateStatus)
		mux.Post("/api/orders/{id}/cancel", h.cancel)
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]itemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	return orderResponse{
		ID:           o.ID,
		Number:       o.Number,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Status:       string(o.Status),
		Items:        items,
		Total:        o.Total,
		Address: addressResponse{
			Street:  o.Address.Street,
			City:    o.Address.City,
			State:   o.Address.State,
			ZipCode: o.Address.ZipCode,
			Country: o.Address.Country,
		},
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrUnknownCustomer) ||
		errors.Is(err, domain.ErrUnknownProduct) ||
		errors.Is(err, domain.ErrNoItems) ||
		errors.Is(err, domain.ErrAddressIncomplete)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
