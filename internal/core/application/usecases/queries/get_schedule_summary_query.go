package queries

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrGetScheduleSummaryQueryIsNotConstructed = errors.New(
	"GetScheduleSummaryQuery must be created via NewGetScheduleSummaryQuery constructor",
)

// GetScheduleSummaryQuery retrieves the whole book condensed into per-week
// totals, most recent week first. This backs the overview screen that
// shows how the business is doing week by week.
type GetScheduleSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetScheduleSummaryQuery creates a parameterless summary query.
func NewGetScheduleSummaryQuery() GetScheduleSummaryQuery {
	return GetScheduleSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetScheduleSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleSummaryQueryIsNotConstructed)
}

// WeekSummary condenses one ISO week: its bounds, order count, and money
// totals.
type WeekSummary struct {
	WeekStart      kernel.Date
	WeekEnd        kernel.Date
	OrderCount     int
	DeliveredCount int
	Totals         services.Totals
}

// ScheduleSummaryResponse is the whole book's summary: the grand totals,
// every delivery date in the book ascending, and one entry per week, most
// recent first.
type ScheduleSummaryResponse struct {
	OrderCount int
	Totals     services.Totals
	Dates      []kernel.Date
	Weeks      []WeekSummary
}
