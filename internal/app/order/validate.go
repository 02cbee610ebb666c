package order

import (
	"strings"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

type ValidateError error

type customerLookup interface {
	Customer(id string) (domain.Customer, error)
}

type Validate struct {
	customers customerLookup
}

func NewValidator(customers customerLookup) *Validate {
	return &Validate{customers: customers}
}

// Validate checks a create request in order: customer, items non-empty,
// address. The first unmet condition is returned and nothing is mutated.
func (v *Validate) Validate(req CreateRequest) (domain.Customer, ValidateError) {
	customer, err := v.customers.Customer(req.CustomerID)
	if err != nil {
		return domain.Customer{}, err
	}

	if len(req.Items) == 0 {
		return domain.Customer{}, domain.ErrNoItems
	}

	if strings.TrimSpace(req.Address.Street) == "" || strings.TrimSpace(req.Address.City) == "" {
		return domain.Customer{}, domain.ErrAddressIncomplete
	}

	return customer, nil
}
