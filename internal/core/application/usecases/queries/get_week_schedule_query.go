package queries

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrGetWeekScheduleQueryIsNotConstructed = errors.New(
	"GetWeekScheduleQuery must be created via NewGetWeekScheduleQuery constructor",
)

// GetWeekScheduleQuery retrieves the schedule for the ISO week containing
// the given date. Any date of the week selects the same week; the handler
// normalizes it to the week's Monday.
type GetWeekScheduleQuery struct { //nolint:recvcheck //using for validation
	weekStart kernel.Date

	guard guard.ConstructorGuard
}

// NewGetWeekScheduleQuery creates a query for the ISO week containing
// dayInWeek.
func NewGetWeekScheduleQuery(dayInWeek kernel.Date) (GetWeekScheduleQuery, error) {
	query := GetWeekScheduleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWeekStart(dayInWeek); err != nil {
		return GetWeekScheduleQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWeekScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetWeekScheduleQueryIsNotConstructed)
}

// WeekStart returns the Monday the requested week starts on.
func (q GetWeekScheduleQuery) WeekStart() kernel.Date {
	return q.weekStart
}

func (q *GetWeekScheduleQuery) setWeekStart(dayInWeek kernel.Date) error {
	if err := dayInWeek.Validate(); err != nil {
		return err
	}

	q.weekStart = dayInWeek.WeekStart()
	return nil
}

// WeekScheduleResponse is one ISO week's slice of the schedule: the days
// that actually hold orders, in calendar order, plus week totals.
type WeekScheduleResponse struct {
	WeekStart kernel.Date
	WeekEnd   kernel.Date
	Days      []DayScheduleResponse
	Totals    services.Totals
}
