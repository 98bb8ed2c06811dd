package ports

import (
	"context"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
)

// SnapshotCache holds a local copy of the most recent full order set.
// It is written after every successful read or write against the
// primary store and read back when the primary store is unreachable,
// so the schedule stays visible offline. The cache is best effort:
// implementations swallow nothing, but callers may ignore Save errors.
type SnapshotCache interface {
	// Save replaces the cached snapshot with the given order set.
	Save(ctx context.Context, orders []*order.Order) error

	// Load returns the cached order set. An empty cache yields an
	// empty slice, not an error.
	Load(ctx context.Context) ([]*order.Order, error)
}
