package commands

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/services"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// CreateOrderCommandHandler registers new orders. Prices the product lines
// from the catalog, appends the order to the end of its day's route, and
// persists it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(store, catalog.DefaultCatalog())
//	orders, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("schedule now holds %d orders\n", len(orders))
type CreateOrderCommandHandler struct {
	store     ports.OrderStore
	catalog   catalog.Catalog
	sequencer services.RouteSequencer
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(store ports.OrderStore, cat catalog.Catalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		store:     store,
		catalog:   cat,
		sequencer: services.NewRouteSequencer(),
	}
}

// Handle processes the order creation command. The new order takes the
// next free route position on its delivery date. Returns the full order
// set after the write.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	products, err := buildProducts(h.catalog, cmd.Lines())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), order.Details{
		CustomerName: cmd.CustomerName(),
		Address:      cmd.Address(),
		DeliveryTime: cmd.DeliveryTime(),
		TimeFormat:   cmd.TimeFormat(),
		DeliveryDate: cmd.DeliveryDate(),
		Products:     products,
		Phone:        cmd.Phone(),
		Notes:        cmd.Notes(),
	})
	if err != nil {
		return nil, err
	}

	existing, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if err = h.place(existing, aggregate); err != nil {
		return nil, err
	}

	return h.store.Upsert(ctx, aggregate)
}

// place appends the order to the end of its day's route. A replay of an
// already landed create keeps the stored position, so retrying after a
// timed-out save never shifts the route.
func (h CreateOrderCommandHandler) place(existing []*order.Order, aggregate *order.Order) error {
	for _, o := range existing {
		if !o.ID().IsEqual(aggregate.ID()) {
			continue
		}
		if o.DeliveryDate().IsEqual(aggregate.DeliveryDate()) {
			return aggregate.AssignRouteOrder(o.RouteOrder())
		}
		break
	}
	return h.sequencer.Place(existing, aggregate)
}
