package order

import (
	"strings"
	"time"

	"github.com/omarHussamm/mf-orders-app/internal/app/domain"
)

// TimelineEntry is one rendered stage of the order status timeline.
type TimelineEntry struct {
	Status    domain.Status
	Label     string
	Completed bool
	Current   bool
	Date      *time.Time
}

// Timeline derives the presentation timeline over the fixed forward
// stages. It renders whatever status the order carries: a stage is
// completed when its index is at or below the current ordinal and the
// order is not cancelled; the current stage shows the update time,
// earlier stages the creation time, future stages no date. A cancelled
// order gets no current forward stage and a terminal cancelled entry.
func Timeline(o *domain.Order) []TimelineEntry {
	current := o.Status.Ordinal()

	entries := make([]TimelineEntry, 0, len(domain.Stages)+1)
	for i, stage := range domain.Stages {
		entry := TimelineEntry{
			Status:    stage,
			Label:     label(stage),
			Completed: i <= current && o.Status != domain.StatusCancelled,
			Current:   stage == o.Status,
		}

		switch {
		case i == current:
			date := o.UpdatedAt
			entry.Date = &date
		case i < current:
			date := o.CreatedAt
			entry.Date = &date
		}

		entries = append(entries, entry)
	}

	if o.Status == domain.StatusCancelled {
		date := o.UpdatedAt
		entries = append(entries, TimelineEntry{
			Status:  domain.StatusCancelled,
			Label:   label(domain.StatusCancelled),
			Current: true,
			Date:    &date,
		})
	}

	return entries
}

func label(s domain.Status) string {
	v := string(s)

	return strings.ToUpper(v[:1]) + v[1:]
}
