package services

import (
	"sort"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
)

// Totals is the financial summary of an order subset: the gross amount, the
// amount already collected on delivered orders, and the outstanding rest.
// Pending is always computed as Total minus Delivered, never independently,
// so the identity pending == total - delivered holds exactly.
type Totals struct {
	Total     kernel.Money
	Delivered kernel.Money
	Pending   kernel.Money
}

// Aggregator groups orders by delivery date and by ISO week and computes
// per-group totals. It is a pure function of the order set it is handed:
// it holds no state and never mutates its input.
//
// Example usage:
//
//	agg := services.NewAggregator()
//	dayOrders := agg.OrdersByDate(orders, date)
//	totals := agg.Totals(dayOrders)
type Aggregator struct{}

// NewAggregator creates an Aggregator.
func NewAggregator() Aggregator {
	return Aggregator{}
}

// OrdersByDate returns the orders scheduled for the given date, sorted
// ascending by route position. Positions with gaps (after deletions) still
// sort correctly; ties fall back to the id so the ordering is total.
func (Aggregator) OrdersByDate(orders []*order.Order, date kernel.Date) []*order.Order {
	day := make([]*order.Order, 0)
	for _, o := range orders {
		if o.DeliveryDate().IsEqual(date) {
			day = append(day, o)
		}
	}

	sort.SliceStable(day, func(i, j int) bool {
		if day[i].RouteOrder() != day[j].RouteOrder() {
			return day[i].RouteOrder() < day[j].RouteOrder()
		}
		return day[i].ID().String() < day[j].ID().String()
	})
	return day
}

// OrdersByWeek returns the orders whose delivery date falls in the ISO week
// keyed by weekStart (the week's Monday). The result is grouped by nothing;
// use OrdersByDate on each of the week's dates when per-day route order
// matters.
func (Aggregator) OrdersByWeek(orders []*order.Order, weekStart kernel.Date) []*order.Order {
	week := make([]*order.Order, 0)
	for _, o := range orders {
		if o.DeliveryDate().WeekStart().IsEqual(weekStart) {
			week = append(week, o)
		}
	}
	return week
}

// UniqueDates returns every distinct delivery date present in the order set,
// each exactly once, sorted ascending.
func (Aggregator) UniqueDates(orders []*order.Order) []kernel.Date {
	seen := make(map[string]kernel.Date)
	for _, o := range orders {
		seen[o.DeliveryDate().String()] = o.DeliveryDate()
	}

	dates := make([]kernel.Date, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// UniqueWeeks returns every distinct week key (Monday date) present in the
// order set, sorted ascending.
func (a Aggregator) UniqueWeeks(orders []*order.Order) []kernel.Date {
	seen := make(map[string]kernel.Date)
	for _, o := range orders {
		week := o.DeliveryDate().WeekStart()
		seen[week.String()] = week
	}

	weeks := make([]kernel.Date, 0, len(seen))
	for _, w := range seen {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	return weeks
}

// UniqueWeeksMostRecentFirst returns the distinct week keys newest first,
// the order the interactive weekly view lists them in.
func (a Aggregator) UniqueWeeksMostRecentFirst(orders []*order.Order) []kernel.Date {
	weeks := a.UniqueWeeks(orders)
	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return weeks
}

// Totals sums the given orders: gross total, collected (delivered) amount,
// and the outstanding difference. An empty subset yields all zeros.
func (Aggregator) Totals(orders []*order.Order) Totals {
	var total, delivered kernel.Money
	for _, o := range orders {
		total = total.Add(o.TotalAmount())
		if o.IsDelivered() {
			delivered = delivered.Add(o.TotalAmount())
		}
	}

	return Totals{
		Total:     total,
		Delivered: delivered,
		Pending:   total.Sub(delivered),
	}
}

// DeliveredCount returns how many of the given orders are delivered.
func (Aggregator) DeliveredCount(orders []*order.Order) int {
	count := 0
	for _, o := range orders {
		if o.IsDelivered() {
			count++
		}
	}
	return count
}
