package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

// Orders is the authoritative in-memory order collection. It keeps
// insertion order so list views are stable across reads.
type Orders struct {
	mu   sync.RWMutex
	byID map[string]*domain.Order
	ids  []string
	seq  int
}

func NewOrders() *Orders {
	return &Orders{
		byID: make(map[string]*domain.Order),
	}
}

func (s *Orders) Add(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[o.ID] = clone(o)
	s.ids = append(s.ids, o.ID)
}

func (s *Orders) Get(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFoundOrder
	}

	return clone(o), nil
}

// List returns an insertion-ordered snapshot of the collection.
func (s *Orders) List() []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		orders = append(orders, clone(s.byID[id]))
	}

	return orders
}

// clone copies an order so readers never share memory with entries
// SetStatus mutates under the lock.
func clone(o *domain.Order) *domain.Order {
	c := *o
	c.Items = append([]domain.OrderItem(nil), o.Items...)

	return &c
}

// SetStatus applies a status already validated by the caller and stamps
// the update time.
func (s *Orders) SetStatus(id string, status domain.Status, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFoundOrder
	}

	o.Status = status
	o.UpdatedAt = at

	return nil
}

// NextNumber issues the next human-readable order number, ORD-YYYY-NNN.
func (s *Orders) NextNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++

	return fmt.Sprintf("ORD-%d-%03d", time.Now().UTC().Year(), s.seq)
}

// Catalog holds the immutable customer and product lookup tables. It is
// never mutated after construction.
type Catalog struct {
	customers    map[string]domain.Customer
	products     map[string]domain.Product
	customerList []domain.Customer
	productList  []domain.Product
}

func NewCatalog(customers []domain.Customer, products []domain.Product) *Catalog {
	c := &Catalog{
		customers:    make(map[string]domain.Customer, len(customers)),
		products:     make(map[string]domain.Product, len(products)),
		customerList: customers,
		productList:  products,
	}

	for _, cust := range customers {
		c.customers[cust.ID] = cust
	}
	for _, p := range products {
		c.products[p.ID] = p
	}

	return c
}

func (c *Catalog) Customer(id string) (domain.Customer, error) {
	cust, ok := c.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrUnknownCustomer
	}

	return cust, nil
}

func (c *Catalog) Product(id string) (domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return domain.Product{}, domain.ErrUnknownProduct
	}

	return p, nil
}

func (c *Catalog) Customers() []domain.Customer {
	return c.customerList
}

func (c *Catalog) Products() []domain.Product {
	return c.productList
}
