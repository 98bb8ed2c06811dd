package queries

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// GetDayScheduleQueryHandler reads one date's schedule from the order
// store.
type GetDayScheduleQueryHandler struct {
	store      ports.OrderStore
	aggregator services.Aggregator
}

// NewGetDayScheduleQueryHandler creates a handler for day schedule reads.
func NewGetDayScheduleQueryHandler(store ports.OrderStore) GetDayScheduleQueryHandler {
	return GetDayScheduleQueryHandler{
		store:      store,
		aggregator: services.NewAggregator(),
	}
}

// Handle executes the query. A date with no orders yields an empty
// schedule with zero totals, not an error.
func (h GetDayScheduleQueryHandler) Handle(ctx context.Context, query GetDayScheduleQuery) (DayScheduleResponse, error) {
	if err := query.Validate(); err != nil {
		return DayScheduleResponse{}, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return DayScheduleResponse{}, err
	}

	day := h.aggregator.OrdersByDate(orders, query.Date())
	return DayScheduleResponse{
		Date:           query.Date(),
		Orders:         day,
		Totals:         h.aggregator.Totals(day),
		DeliveredCount: h.aggregator.DeliveredCount(day),
	}, nil
}
