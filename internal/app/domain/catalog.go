package domain

import "errors"

var (
	ErrUnknownCustomer   = errors.New("customer not found")
	ErrUnknownProduct    = errors.New("product not found")
	ErrNoItems           = errors.New("order must contain at least one item")
	ErrAddressIncomplete = errors.New("shipping address requires street and city")
)

// Customer is read-only reference data, never mutated by the workflow.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// Product is read-only reference data used to populate item price and name.
type Product struct {
	ID    string
	Name  string
	Price float64
}
