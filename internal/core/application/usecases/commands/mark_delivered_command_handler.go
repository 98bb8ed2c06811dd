package commands

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// MarkDeliveredCommandHandler flips an order to delivered with its payment
// method. Everything else about the order, its route position included,
// stays untouched.
type MarkDeliveredCommandHandler struct {
	store ports.OrderStore
}

// NewMarkDeliveredCommandHandler creates a handler for delivery marking.
func NewMarkDeliveredCommandHandler(store ports.OrderStore) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{store: store}
}

// Handle processes the command. Returns the full order set after the
// write, or a not found error when the order does not exist.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, aggregate := range orders {
		if !aggregate.ID().IsEqual(cmd.OrderID()) {
			continue
		}
		if err = aggregate.MarkDelivered(cmd.PaymentMethod()); err != nil {
			return nil, err
		}
		return h.store.Upsert(ctx, aggregate)
	}

	return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
}
