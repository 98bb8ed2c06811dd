package commands

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// ResequenceRouteCommandHandler rewrites a date's route positions to a
// dense 1..N sequence, following the operator's submitted visit order when
// the command carries one, and persists each rewritten order
// independently. Replaying the command after a partial failure finishes
// the job.
type ResequenceRouteCommandHandler struct {
	store     ports.OrderStore
	sequencer services.RouteSequencer
}

// NewResequenceRouteCommandHandler creates a handler for route
// resequencing.
func NewResequenceRouteCommandHandler(store ports.OrderStore) ResequenceRouteCommandHandler {
	return ResequenceRouteCommandHandler{
		store:     store,
		sequencer: services.NewRouteSequencer(),
	}
}

// Handle processes the resequence command. A date with no orders, or one
// that is already dense, is a no-op. Returns the full order set after the
// writes.
func (h ResequenceRouteCommandHandler) Handle(ctx context.Context, cmd ResequenceRouteCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.sequencer.Resequence(orders, cmd.Date(), cmd.OrderIDs())
	if err != nil {
		return nil, err
	}
	if len(changed) == 0 {
		return orders, nil
	}

	result := orders
	for _, aggregate := range changed {
		if result, err = h.store.Upsert(ctx, aggregate); err != nil {
			return nil, err
		}
	}
	return result, nil
}
