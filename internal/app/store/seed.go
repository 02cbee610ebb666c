package store

import (
	"time"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

// Seed builds the demo dataset: six orders across every status, six
// customers and seven products.
func Seed() (*Orders, *Catalog) {
	catalog := NewCatalog(
		[]domain.Customer{
			{ID: "cust-001", Name: "John Smith", Email: "john@email.com"},
			{ID: "cust-002", Name: "Sarah Johnson", Email: "sarah@email.com"},
			{ID: "cust-003", Name: "Mike Davis", Email: "mike@email.com"},
			{ID: "cust-004", Name: "Emily Brown", Email: "emily@email.com"},
			{ID: "cust-005", Name: "David Wilson", Email: "david@email.com"},
			{ID: "cust-006", Name: "Lisa Anderson", Email: "lisa@email.com"},
		},
		[]domain.Product{
			{ID: "1", Name: "Wireless Bluetooth Headphones", Price: 299.99},
			{ID: "2", Name: "Gaming Mechanical Keyboard", Price: 159.99},
			{ID: "3", Name: "Ergonomic Office Chair", Price: 399.99},
			{ID: "4", Name: "Stainless Steel Water Bottle", Price: 34.99},
			{ID: "5", Name: "Yoga Mat Premium", Price: 79.99},
			{ID: "6", Name: "Smart Watch Series 5", Price: 249.99},
			{ID: "7", Name: "Coffee Grinder Manual", Price: 89.99},
		},
	)

	orders := NewOrders()
	for _, o := range seedOrders() {
		orders.Add(o)
	}
	orders.seq = 6

	return orders, catalog
}

func seedOrders() []*domain.Order {
	return []*domain.Order{
		{
			ID:           "1",
			Number:       "ORD-2024-001",
			CustomerID:   "cust-001",
			CustomerName: "John Smith",
			Status:       domain.StatusDelivered,
			Items: []domain.OrderItem{
				{ProductID: "1", ProductName: "Wireless Bluetooth Headphones", Quantity: 1, Price: 299.99},
				{ProductID: "6", ProductName: "Smart Watch Series 5", Quantity: 1, Price: 249.99},
			},
			Total: 549.98,
			Address: domain.ShippingAddress{
				Street: "123 Main St", City: "New York", State: "NY", ZipCode: "10001", Country: "USA",
			},
			CreatedAt: time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 25, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			Number:       "ORD-2024-002",
			CustomerID:   "cust-002",
			CustomerName: "Sarah Johnson",
			Status:       domain.StatusProcessing,
			Items: []domain.OrderItem{
				{ProductID: "3", ProductName: "Ergonomic Office Chair", Quantity: 1, Price: 399.99},
			},
			Total: 399.99,
			Address: domain.ShippingAddress{
				Street: "456 Oak Avenue", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "USA",
			},
			CreatedAt: time.Date(2024, 1, 22, 14, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 23, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:           "3",
			Number:       "ORD-2024-003",
			CustomerID:   "cust-003",
			CustomerName: "Mike Davis",
			Status:       domain.StatusShipped,
			Items: []domain.OrderItem{
				{ProductID: "2", ProductName: "Gaming Mechanical Keyboard", Quantity: 2, Price: 159.99},
				{ProductID: "4", ProductName: "Stainless Steel Water Bottle", Quantity: 3, Price: 34.99},
			},
			Total: 424.95,
			Address: domain.ShippingAddress{
				Street: "789 Pine Road", City: "Chicago", State: "IL", ZipCode: "60601", Country: "USA",
			},
			CreatedAt: time.Date(2024, 1, 18, 11, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 24, 13, 15, 0, 0, time.UTC),
		},
		{
			ID:           "4",
			Number:       "ORD-2024-004",
			CustomerID:   "cust-004",
			CustomerName: "Emily Brown",
			Status:       domain.StatusPending,
			Items: []domain.OrderItem{
				{ProductID: "5", ProductName: "Yoga Mat Premium", Quantity: 1, Price: 79.99},
			},
			Total: 79.99,
			Address: domain.ShippingAddress{
				Street: "321 Elm Street", City: "Austin", State: "TX", ZipCode: "73301", Country: "USA",
			},
			CreatedAt: time.Date(2024, 1, 25, 16, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 25, 16, 30, 0, 0, time.UTC),
		},
		{
			ID:           "5",
			Number:       "ORD-2024-005",
			CustomerID:   "cust-005",
			CustomerName: "David Wilson",
			Status:       domain.StatusCancelled,
			Items: []domain.OrderItem{
				{ProductID: "7", ProductName: "Coffee Grinder Manual", Quantity: 1, Price: 89.99},
			},
			Total: 89.99,
			Address: domain.ShippingAddress{
				Street: "654 Maple Drive", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA",
			},
			CreatedAt: time.Date(2024, 1, 15, 9, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 16, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:           "6",
			Number:       "ORD-2024-006",
			CustomerID:   "cust-006",
			CustomerName: "Lisa Anderson",
			Status:       domain.StatusProcessing,
			Items: []domain.OrderItem{
				{ProductID: "1", ProductName: "Wireless Bluetooth Headphones", Quantity: 2, Price: 299.99},
			},
			Total: 599.98,
			Address: domain.ShippingAddress{
				Street: "987 Cedar Lane", City: "Miami", State: "FL", ZipCode: "33101", Country: "USA",
			},
			CreatedAt: time.Date(2024, 1, 26, 10, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 26, 10, 15, 0, 0, time.UTC),
		},
	}
}
