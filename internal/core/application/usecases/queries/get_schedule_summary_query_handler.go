package queries

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// GetScheduleSummaryQueryHandler condenses the whole order book into
// per-week totals.
type GetScheduleSummaryQueryHandler struct {
	store      ports.OrderStore
	aggregator services.Aggregator
}

// NewGetScheduleSummaryQueryHandler creates a handler for summary reads.
func NewGetScheduleSummaryQueryHandler(store ports.OrderStore) GetScheduleSummaryQueryHandler {
	return GetScheduleSummaryQueryHandler{
		store:      store,
		aggregator: services.NewAggregator(),
	}
}

// Handle executes the query. An empty book yields zero totals and no
// weeks.
func (h GetScheduleSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetScheduleSummaryQuery,
) (ScheduleSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return ScheduleSummaryResponse{}, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return ScheduleSummaryResponse{}, err
	}

	weeks := make([]WeekSummary, 0)
	for _, weekStart := range h.aggregator.UniqueWeeksMostRecentFirst(orders) {
		week := h.aggregator.OrdersByWeek(orders, weekStart)
		weeks = append(weeks, WeekSummary{
			WeekStart:      weekStart,
			WeekEnd:        weekStart.WeekEnd(),
			OrderCount:     len(week),
			DeliveredCount: h.aggregator.DeliveredCount(week),
			Totals:         h.aggregator.Totals(week),
		})
	}

	return ScheduleSummaryResponse{
		OrderCount: len(orders),
		Totals:     h.aggregator.Totals(orders),
		Dates:      h.aggregator.UniqueDates(orders),
		Weeks:      weeks,
	}, nil
}
