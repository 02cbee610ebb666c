package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

// taxRate is the display-only tax applied to the create-order quote. It
// is never stored on the order.
const taxRate = 0.08

type ItemRequest struct {
	ProductID string
	Quantity  int
}

type CreateRequest struct {
	CustomerID string
	Items      []ItemRequest
	Address    domain.ShippingAddress
}

// Summary is the presentation quote returned alongside a created order.
type Summary struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

type ordersRepository interface {
	Add(o *domain.Order)
	Get(id string) (*domain.Order, error)
	List() []*domain.Order
	SetStatus(id string, status domain.Status, at time.Time) error
	NextNumber() string
}

type productLookup interface {
	Product(id string) (domain.Product, error)
}

type validateRequest interface {
	Validate(req CreateRequest) (domain.Customer, ValidateError)
}

type Service struct {
	rep       ordersRepository
	products  productLookup
	validator validateRequest
}

func NewOrderService(rep ordersRepository, products productLookup, validator validateRequest) *Service {
	return &Service{
		rep:       rep,
		products:  products,
		validator: validator,
	}
}

// Create validates the request, resolves items against the product table
// and stores a new pending order. On validation failure no order is
// created.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Order, Summary, error) {
	customer, err := s.validator.Validate(req)
	if err != nil {
		return nil, Summary{}, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, ir := range req.Items {
		product, err := s.products.Product(ir.ProductID)
		if err != nil {
			return nil, Summary{}, err
		}

		quantity := ir.Quantity
		if quantity < 0 {
			quantity = 0
		}

		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Price:       product.Price,
		})

		total += float64(quantity) * product.Price
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:           uuid.New().String(),
		Number:       s.rep.NextNumber(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        items,
		Total:        total,
		Address:      req.Address,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.rep.Add(order)

	return order, Summary{
		Subtotal: total,
		Tax:      total * taxRate,
		Total:    total * (1 + taxRate),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.rep.Get(id)
}

// List returns orders matching the status and search filters, plus the
// per-status counts over the full collection.
func (s *Service) List(ctx context.Context, status, term string) ([]*domain.Order, map[string]int, error) {
	orders := s.rep.List()

	return Filter(orders, status, term), StatusCounts(orders), nil
}

// UpdateStatus applies a status change if it is a legal transition.
func (s *Service) UpdateStatus(ctx context.Context, id string, to domain.Status) (*domain.Order, error) {
	o, err := s.rep.Get(id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(o.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.rep.SetStatus(id, to, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.rep.Get(id)
}

func (s *Service) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCancelled)
}
