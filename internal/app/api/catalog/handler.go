package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

type customerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type productResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type tables interface {
	Customers() []domain.Customer
	Products() []domain.Product
}

// Handler serves the read-only reference tables the create form is
// populated from.
type Handler struct {
	tables tables
}

func NewCatalogHandler(tables tables) *Handler {
	return &Handler{tables: tables}
}

func (h *Handler) customers(w http.ResponseWriter, r *http.Request) {
	customers := h.tables.Customers()

	resp := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, customerResponse{ID: c.ID, Name: c.Name, Email: c.Email})
	}

	writeJSON(w, resp)
}

func (h *Handler) products(w http.ResponseWriter, r *http.Request) {
	products := h.tables.Products()

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productResponse{ID: p.ID, Name: p.Name, Price: p.Price})
	}

	writeJSON(w, resp)
}

func (h *Handler) RegisterRoutes() func(mux *chi.Mux) {
	return func(mux *chi.Mux) {
		mux.Get("/api/customers", h.customers)
		mux.Get("/api/products", h.products)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
