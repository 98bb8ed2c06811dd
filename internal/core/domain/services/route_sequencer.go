package services

import (
	"fmt"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// RouteSequencer maintains the delivery sequence of a day's orders. A day's
// sequence is dense, 1..N in visit order. Deletions may leave gaps; the
// relative order stays meaningful and the next Resequence restores density.
//
// The sequencer never mutates the slices it receives. Methods that change
// route positions mutate the orders themselves through AssignRouteOrder and
// return the affected orders so callers know what to persist.
type RouteSequencer struct {
	aggregator Aggregator
}

// NewRouteSequencer creates a RouteSequencer.
func NewRouteSequencer() RouteSequencer {
	return RouteSequencer{aggregator: NewAggregator()}
}

// NextRouteOrder returns the position a newly scheduled order for the given
// date should take: one past the highest position currently in use. The
// first order of a day gets position 1.
func (s RouteSequencer) NextRouteOrder(orders []*order.Order, date kernel.Date) int {
	max := 0
	for _, o := range orders {
		if o.DeliveryDate().IsEqual(date) && o.RouteOrder() > max {
			max = o.RouteOrder()
		}
	}
	return max + 1
}

// Resequence rewrites the route positions of the given date's orders to the
// dense sequence 1..N. An empty target keeps the current relative order and
// only closes gaps. A non-empty target is the operator's full visit order
// for the date and must list every order scheduled on it exactly once;
// positions are rewritten to that ordering. Orders whose position does not
// change are left untouched. It returns the orders whose position was
// rewritten.
func (s RouteSequencer) Resequence(orders []*order.Order, date kernel.Date, target []kernel.UUID) ([]*order.Order, error) {
	day := s.aggregator.OrdersByDate(orders, date)

	if len(target) > 0 {
		reordered, err := reorderToTarget(day, target)
		if err != nil {
			return nil, err
		}
		day = reordered
	}
	return renumber(day)
}

func reorderToTarget(day []*order.Order, target []kernel.UUID) ([]*order.Order, error) {
	if len(target) != len(day) {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderIDs",
			fmt.Errorf("target ordering lists %d orders, the date has %d", len(target), len(day)))
	}

	byID := make(map[string]*order.Order, len(day))
	for _, o := range day {
		byID[o.ID().String()] = o
	}

	reordered := make([]*order.Order, 0, len(day))
	for _, id := range target {
		o, ok := byID[id.String()]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderIDs",
				fmt.Errorf("%s is not scheduled on the date or is listed twice", id))
		}
		delete(byID, id.String())
		reordered = append(reordered, o)
	}
	return reordered, nil
}

func renumber(day []*order.Order) ([]*order.Order, error) {
	changed := make([]*order.Order, 0)
	for i, o := range day {
		position := i + 1
		if o.RouteOrder() == position {
			continue
		}
		if err := o.AssignRouteOrder(position); err != nil {
			return nil, err
		}
		changed = append(changed, o)
	}
	return changed, nil
}

// Move places the order with the given id at targetPosition (1-based) within
// its delivery date's sequence and resequences the day so positions stay
// dense. A target beyond the end of the day moves the order last. It returns
// the orders whose position changed.
func (s RouteSequencer) Move(orders []*order.Order, id kernel.UUID, targetPosition int) ([]*order.Order, error) {
	if targetPosition < 1 {
		return nil, errs.NewValueIsOutOfRangeError("targetPosition", targetPosition, 1, len(orders))
	}

	var moved *order.Order
	for _, o := range orders {
		if o.ID().IsEqual(id) {
			moved = o
			break
		}
	}
	if moved == nil {
		return nil, errs.NewObjectNotFoundError("id", id.String())
	}

	day := s.aggregator.OrdersByDate(orders, moved.DeliveryDate())

	without := make([]*order.Order, 0, len(day))
	for _, o := range day {
		if !o.ID().IsEqual(id) {
			without = append(without, o)
		}
	}

	index := targetPosition - 1
	if index > len(without) {
		index = len(without)
	}
	reordered := make([]*order.Order, 0, len(day))
	reordered = append(reordered, without[:index]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, without[index:]...)

	return renumber(reordered)
}

// Place assigns the given order its position for the date it is scheduled
// on, appending it to the end of that day's route. It is used when an order
// is created or rescheduled to a new date and therefore has no position yet.
func (s RouteSequencer) Place(orders []*order.Order, o *order.Order) error {
	if o == nil {
		return order.ErrOrderIsNotConstructed
	}
	return o.AssignRouteOrder(s.NextRouteOrder(orders, o.DeliveryDate()))
}
