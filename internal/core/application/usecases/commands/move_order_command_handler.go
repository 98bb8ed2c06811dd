package commands

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// MoveOrderCommandHandler moves an order within its day's route and
// persists every order whose position changed, one upsert each.
type MoveOrderCommandHandler struct {
	store     ports.OrderStore
	sequencer services.RouteSequencer
}

// NewMoveOrderCommandHandler creates a handler for route moves.
func NewMoveOrderCommandHandler(store ports.OrderStore) MoveOrderCommandHandler {
	return MoveOrderCommandHandler{
		store:     store,
		sequencer: services.NewRouteSequencer(),
	}
}

// Handle processes the move. The day's positions come out dense, 1..N in
// the new visit order. Returns the full order set after the writes.
func (h MoveOrderCommandHandler) Handle(ctx context.Context, cmd MoveOrderCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := h.sequencer.Move(orders, cmd.OrderID(), cmd.TargetPosition())
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
