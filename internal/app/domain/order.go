package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Stages is the forward lifecycle in order. Cancelled sits outside it.
var Stages = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

var (
	ErrNotFoundOrder     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}

	return "", ErrInvalidStatus
}

// Ordinal returns the index of a forward stage, -1 for cancelled or
// unknown values.
func (s Status) Ordinal() int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}

	return -1
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether from -> to is a legal edge: forward one
// stage at a time, or to cancelled from any non-terminal state.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}

	if to == StatusCancelled {
		return true
	}

	return to.Ordinal() == from.Ordinal()+1
}

type ShippingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

type Order struct {
	ID           string
	Number       string
	CustomerID   string
	CustomerName string
	Items        []OrderItem
	Total        float64
	Address      ShippingAddress
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
