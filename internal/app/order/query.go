package order

import (
	"strings"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

// StatusAll is the sentinel filter value matching every status.
const StatusAll = "all"

func matchesStatus(o *domain.Order, status string) bool {
	return status == StatusAll || string(o.Status) == status
}

func matchesSearch(o *domain.Order, term string) bool {
	if term == "" {
		return true
	}

	term = strings.ToLower(term)

	return strings.Contains(strings.ToLower(o.Number), term) ||
		strings.Contains(strings.ToLower(o.CustomerName), term)
}

// FilterByStatus returns the subset whose status equals the given value,
// or the full set for "all". Unknown values yield an empty result.
func FilterByStatus(orders []*domain.Order, status string) []*domain.Order {
	return Filter(orders, status, "")
}

// Search returns orders whose number or customer name contains the
// case-insensitive term. An empty term matches all.
func Search(orders []*domain.Order, term string) []*domain.Order {
	return Filter(orders, StatusAll, term)
}

// Filter applies the status and search predicates conjunctively,
// preserving the input order.
func Filter(orders []*domain.Order, status, term string) []*domain.Order {
	result := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if matchesStatus(o, status) && matchesSearch(o, term) {
			result = append(result, o)
		}
	}

	return result
}

// StatusCounts returns the number of orders per fixed status, plus the
// "all" bucket. Used to render filter-tab badges.
func StatusCounts(orders []*domain.Order) map[string]int {
	counts := map[string]int{StatusAll: len(orders)}
	for _, s := range domain.Stages {
		counts[string(s)] = 0
	}
	counts[string(domain.StatusCancelled)] = 0

	for _, o := range orders {
		counts[string(o.Status)]++
	}

	return counts
}
