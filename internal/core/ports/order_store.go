package ports

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
)

// OrderStore defines the persistence contract for order aggregates.
// Every mutating method returns the complete order set as it exists
// after the change, so callers always work from a fresh, consistent
// view of the schedule without issuing a second read.
type OrderStore interface {
	// List retrieves every order in the store.
	List(ctx context.Context) ([]*order.Order, error)

	// Upsert persists the order, inserting it when its id is new and
	// replacing the stored row otherwise. The creation timestamp of an
	// existing row is preserved; replaying the same upsert is harmless.
	// Returns the full order set after the write.
	Upsert(ctx context.Context, aggregate *order.Order) ([]*order.Order, error)

	// DeleteByID removes the order with the given id. Deleting an id
	// that is not present is not an error. Returns the full order set
	// after the removal.
	DeleteByID(ctx context.Context, id kernel.UUID) ([]*order.Order, error)
}
