package commands

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order. The day's remaining route
// positions keep their relative order with a gap; callers resequence when
// density matters.
type DeleteOrderCommandHandler struct {
	store ports.OrderStore
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(store ports.OrderStore) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{store: store}
}

// Handle processes the delete command. Returns the full order set after
// the removal; a missing order is not an error.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.store.DeleteByID(ctx, cmd.OrderID())
}
