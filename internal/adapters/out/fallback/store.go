// Package fallback decorates an OrderStore with a local snapshot cache.
// Successful reads and writes refresh the cache; when the primary store is
// unreachable, reads serve the last cached snapshot instead of failing.
// Writes never fall back: an unreachable store fails the write so the
// caller knows nothing was persisted.
package fallback

import (
	"context"
	"errors"
	"log/slog"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// Store implements OrderStore by delegating to a primary store and keeping
// a snapshot cache in sync.
type Store struct {
	primary ports.OrderStore
	cache   ports.SnapshotCache
	logger  *slog.Logger
}

// NewStore wraps the primary store with the cache. The logger reports
// cache maintenance failures, which never fail the operation itself.
func NewStore(primary ports.OrderStore, cache ports.SnapshotCache, logger *slog.Logger) *Store {
	return &Store{primary: primary, cache: cache, logger: logger}
}

// List reads from the primary store, refreshing the cache on success. When
// the store is unreachable the cached snapshot is served instead.
func (s *Store) List(ctx context.Context) ([]*order.Order, error) {
	orders, err := s.primary.List(ctx)
	if err == nil {
		s.refresh(ctx, orders)
		return orders, nil
	}

	if !errors.Is(err, errs.ErrStoreUnavailable) {
		return nil, err
	}

	s.logger.Warn("order store unreachable, serving cached snapshot", "error", err)
	cached, cacheErr := s.cache.Load(ctx)
	if cacheErr != nil {
		return nil, err
	}
	return cached, nil
}

// Upsert writes through to the primary store. The write fails when the
// store is unreachable; on success the returned set refreshes the cache.
func (s *Store) Upsert(ctx context.Context, aggregate *order.Order) ([]*order.Order, error) {
	orders, err := s.primary.Upsert(ctx, aggregate)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, orders)
	return orders, nil
}

// DeleteByID deletes through to the primary store, refreshing the cache on
// success.
func (s *Store) DeleteByID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	orders, err := s.primary.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, orders)
	return orders, nil
}

func (s *Store) refresh(ctx context.Context, orders []*order.Order) {
	if err := s.cache.Save(ctx, orders); err != nil {
		s.logger.Warn("failed to refresh snapshot cache", "error", err)
	}
}
