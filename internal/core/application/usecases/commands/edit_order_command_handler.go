package commands

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// EditOrderCommandHandler rewrites an order's details. Moving the order to
// another delivery date drops it from its old route and appends it to the
// end of the new date's route; the old date keeps its relative order with
// a gap, which the next resequence closes.
type EditOrderCommandHandler struct {
	store     ports.OrderStore
	catalog   catalog.Catalog
	sequencer services.RouteSequencer
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(store ports.OrderStore, cat catalog.Catalog) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		store:     store,
		catalog:   cat,
		sequencer: services.NewRouteSequencer(),
	}
}

// Handle processes the edit command. Returns the full order set after the
// write, or a not found error when the order does not exist.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var aggregate *order.Order
	for _, o := range orders {
		if o.ID().IsEqual(cmd.OrderID()) {
			aggregate = o
			break
		}
	}
	if aggregate == nil {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	products, err := buildProducts(h.catalog, cmd.Lines())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeDetails(order.Details{
		CustomerName: cmd.CustomerName(),
		Address:      cmd.Address(),
		DeliveryTime: cmd.DeliveryTime(),
		TimeFormat:   cmd.TimeFormat(),
		DeliveryDate: cmd.DeliveryDate(),
		Products:     products,
		Phone:        cmd.Phone(),
		Notes:        cmd.Notes(),
	}); err != nil {
		return nil, err
	}

	// A cleared route position means the order changed dates and needs a
	// spot at the end of the new date's route.
	if aggregate.RouteOrder() == 0 {
		if err = h.sequencer.Place(orders, aggregate); err != nil {
			return nil, err
		}
	}

	return h.store.Upsert(ctx, aggregate)
}
