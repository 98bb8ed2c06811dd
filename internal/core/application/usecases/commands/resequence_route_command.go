package commands

import (
	"errors"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/pkg/guard"
)

var ErrResequenceRouteCommandIsNotConstructed = errors.New(
	"ResequenceRouteCommand must be created via NewResequenceRouteCommand constructor",
)

// ResequenceRouteCommand represents a request to rewrite a date's route
// positions to the dense sequence 1..N. Without a target ordering it keeps
// the current visit order and only closes gaps; with one, the operator's
// submitted ordering becomes the new visit order.
type ResequenceRouteCommand struct { //nolint:recvcheck //using for validation
	date     kernel.Date
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewResequenceRouteCommand creates a command to resequence the given
// date's route. orderIDs is the operator's full target ordering for the
// date; it may be empty, in which case the current order is kept.
func NewResequenceRouteCommand(date kernel.Date, orderIDs []kernel.UUID) (ResequenceRouteCommand, error) {
	cmd := ResequenceRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return ResequenceRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResequenceRouteCommand) Validate() error {
	return c.guard.Validate(ErrResequenceRouteCommandIsNotConstructed)
}

// Date returns the delivery date whose route is resequenced.
func (c ResequenceRouteCommand) Date() kernel.Date {
	return c.date
}

// OrderIDs returns the target visit order for the date, empty when the
// current order is to be kept.
func (c ResequenceRouteCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func (c *ResequenceRouteCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *ResequenceRouteCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}
