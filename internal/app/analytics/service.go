package analytics

import (
	"context"
	"math"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

type repository interface {
	List() []*domain.Order
}

// StatusShare is one row of the per-status breakdown.
type StatusShare struct {
	Status  domain.Status
	Count   int
	Percent float64
}

type Summary struct {
	TotalOrders       int
	TotalRevenue      float64
	AverageOrderValue float64
	StatusBreakdown   []StatusShare
	CancellationRate  float64
}

type Service struct {
	rep repository
}

func NewAnalyticsService(rep repository) *Service {
	return &Service{rep: rep}
}

// Summary aggregates the order collection: revenue and average exclude
// cancelled orders, and every divisor-zero case resolves to 0.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	orders := s.rep.List()

	total := len(orders)
	counts := make(map[domain.Status]int, len(domain.Stages)+1)

	var revenue float64
	for _, o := range orders {
		counts[o.Status]++
		if o.Status != domain.StatusCancelled {
			revenue += o.Total
		}
	}

	cancelled := counts[domain.StatusCancelled]

	var average float64
	if total-cancelled > 0 {
		average = revenue / float64(total-cancelled)
	}

	breakdown := make([]StatusShare, 0, len(domain.Stages)+1)
	for _, st := range append(append([]domain.Status{}, domain.Stages...), domain.StatusCancelled) {
		breakdown = append(breakdown, StatusShare{
			Status:  st,
			Count:   counts[st],
			Percent: percentage(counts[st], total),
		})
	}

	return &Summary{
		TotalOrders:       total,
		TotalRevenue:      revenue,
		AverageOrderValue: average,
		StatusBreakdown:   breakdown,
		CancellationRate:  percentage(cancelled, total),
	}, nil
}

// percentage is count/total*100 rounded to one decimal, 0 when total is 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(count)/float64(total)*1000) / 10
}
