package queries

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// GetWeekScheduleQueryHandler reads one ISO week's schedule from the order
// store, grouped into the days that hold orders.
type GetWeekScheduleQueryHandler struct {
	store      ports.OrderStore
	aggregator services.Aggregator
}

// NewGetWeekScheduleQueryHandler creates a handler for week schedule
// reads.
func NewGetWeekScheduleQueryHandler(store ports.OrderStore) GetWeekScheduleQueryHandler {
	return GetWeekScheduleQueryHandler{
		store:      store,
		aggregator: services.NewAggregator(),
	}
}

// Handle executes the query. Days without orders are omitted; a week with
// no orders at all yields an empty day list with zero totals.
func (h GetWeekScheduleQueryHandler) Handle(ctx context.Context, query GetWeekScheduleQuery) (WeekScheduleResponse, error) {
	if err := query.Validate(); err != nil {
		return WeekScheduleResponse{}, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return WeekScheduleResponse{}, err
	}

	week := h.aggregator.OrdersByWeek(orders, query.WeekStart())

	days := make([]DayScheduleResponse, 0)
	for _, date := range h.aggregator.UniqueDates(week) {
		day := h.aggregator.OrdersByDate(week, date)
		days = append(days, DayScheduleResponse{
			Date:           date,
			Orders:         day,
			Totals:         h.aggregator.Totals(day),
			DeliveredCount: h.aggregator.DeliveredCount(day),
		})
	}

	return WeekScheduleResponse{
		WeekStart: query.WeekStart(),
		WeekEnd:   query.WeekStart().WeekEnd(),
		Days:      days,
		Totals:    h.aggregator.Totals(week),
	}, nil
}
