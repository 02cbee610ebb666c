package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
	"github.com/omarHussamm/mf-orders-app/internal/app/store"
)

func seedOrders(t *testing.T, orders ...*domain.Order) *store.Orders {
	t.Helper()

	s := store.NewOrders()
	for _, o := range orders {
		s.Add(o)
	}

	return s
}

func demo(id string, status domain.Status, total float64) *domain.Order {
	return &domain.Order{
		ID:        id,
		Number:    "ORD-2024-" + id,
		Status:    status,
		Total:     total,
		CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummary_SeedDataset(t *testing.T) {
	orders, _ := store.Seed()
	svc := NewAnalyticsService(orders)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TotalOrders)

	// Revenue excludes the one cancelled order (89.99).
	assert.InDelta(t, 2054.89, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 2054.89/5, summary.AverageOrderValue, 1e-9)

	counts := map[domain.Status]int{}
	sum := 0
	for _, share := range summary.StatusBreakdown {
		counts[share.Status] = share.Count
		sum += share.Count
	}

	assert.Equal(t, summary.TotalOrders, sum)
	assert.Equal(t, 1, counts[domain.StatusPending])
	assert.Equal(t, 2, counts[domain.StatusProcessing])
	assert.Equal(t, 1, counts[domain.StatusShipped])
	assert.Equal(t, 1, counts[domain.StatusDelivered])
	assert.Equal(t, 1, counts[domain.StatusCancelled])

	assert.InDelta(t, 16.7, summary.CancellationRate, 1e-9)
}

func TestSummary_PercentagesRoundToOneDecimal(t *testing.T) {
	svc := NewAnalyticsService(seedOrders(t,
		demo("001", domain.StatusPending, 100),
		demo("002", domain.StatusProcessing, 100),
		demo("003", domain.StatusShipped, 100),
	))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	for _, share := range summary.StatusBreakdown {
		if share.Count == 1 {
			assert.InDelta(t, 33.3, share.Percent, 1e-9)
		} else {
			assert.Zero(t, share.Percent)
		}
	}
}

func TestSummary_AllCancelled(t *testing.T) {
	svc := NewAnalyticsService(seedOrders(t,
		demo("001", domain.StatusCancelled, 250),
	))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	// Divisor-zero guard: the average resolves to 0, not NaN.
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AverageOrderValue)
	assert.InDelta(t, 100.0, summary.CancellationRate, 1e-9)
}

func TestSummary_EmptyStore(t *testing.T) {
	svc := NewAnalyticsService(store.NewOrders())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AverageOrderValue)
	assert.Zero(t, summary.CancellationRate)

	for _, share := range summary.StatusBreakdown {
		assert.Zero(t, share.Count)
		assert.Zero(t, share.Percent)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  float64
	}{
		{name: "zero_total", count: 3, total: 0, want: 0},
		{name: "third", count: 1, total: 3, want: 33.3},
		{name: "two_thirds", count: 2, total: 3, want: 66.7},
		{name: "whole", count: 5, total: 5, want: 100},
		{name: "sixth", count: 1, total: 6, want: 16.7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.want, percentage(test.count, test.total), 1e-9)
		})
	}
}
