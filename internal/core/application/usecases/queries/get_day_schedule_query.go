// Package queries contains read operations over the order book. Query
// handlers read the full order set through the OrderStore port and shape
// it with the domain aggregator; they never mutate anything.
package queries

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrGetDayScheduleQueryIsNotConstructed = errors.New(
	"GetDayScheduleQuery must be created via NewGetDayScheduleQuery constructor",
)

// GetDayScheduleQuery retrieves one delivery date's orders in route order
// together with the day's money totals.
//
// Example:
//
//	query, err := NewGetDayScheduleQuery(date)
//	if err != nil {
//	    return err
//	}
//	day, err := handler.Handle(ctx, query)
type GetDayScheduleQuery struct { //nolint:recvcheck //using for validation
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewGetDayScheduleQuery creates a query for the given delivery date.
func NewGetDayScheduleQuery(date kernel.Date) (GetDayScheduleQuery, error) {
	query := GetDayScheduleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDate(date); err != nil {
		return GetDayScheduleQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDayScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetDayScheduleQueryIsNotConstructed)
}

// Date returns the delivery date being read.
func (q GetDayScheduleQuery) Date() kernel.Date {
	return q.date
}

func (q *GetDayScheduleQuery) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	q.date = date
	return nil
}

// DayScheduleResponse is one date's slice of the schedule: the orders in
// visit order plus the date's totals.
type DayScheduleResponse struct {
	Date           kernel.Date
	Orders         []*order.Order
	Totals         services.Totals
	DeliveredCount int
}
