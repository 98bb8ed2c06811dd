// Package memstore provides an in-memory OrderStore. It backs unit tests
// and local runs that have no PostgreSQL at hand, with the same upsert and
// timestamp semantics as the real store.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
)

// InMemoryOrderStore implements OrderStore on a guarded map.
type InMemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	clock  func() time.Time
}

// NewInMemoryOrderStore creates an empty in-memory order store.
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		orders: make(map[string]*order.Order),
		clock:  time.Now,
	}
}

// List retrieves every order, sorted the way the SQL store sorts: by
// delivery date, route position, then id.
func (s *InMemoryOrderStore) List(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

// Upsert stores the order, keeping the creation timestamp of an already
// stored order and stamping updated_at. Returns the full set after the
// write.
func (s *InMemoryOrderStore) Upsert(_ context.Context, aggregate *order.Order) ([]*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock().UTC()
	createdAt := aggregate.CreatedAt()
	if existing, ok := s.orders[aggregate.ID().String()]; ok {
		createdAt = existing.CreatedAt()
	} else if createdAt.IsZero() {
		createdAt = now
	}

	stored, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:            aggregate.ID(),
		Details:       aggregate.Details(),
		PaymentMethod: aggregate.PaymentMethod(),
		IsDelivered:   aggregate.IsDelivered(),
		RouteOrder:    aggregate.RouteOrder(),
		CreatedAt:     createdAt,
		UpdatedAt:     &now,
	})
	if err != nil {
		return nil, err
	}

	s.orders[stored.ID().String()] = stored
	return s.snapshot(), nil
}

// DeleteByID removes the order if present. Returns the full set after the
// removal.
func (s *InMemoryOrderStore) DeleteByID(_ context.Context, id kernel.UUID) ([]*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.orders, id.String())
	return s.snapshot(), nil
}

// snapshot copies the order set in deterministic order. Callers must hold
// at least the read lock.
func (s *InMemoryOrderStore) snapshot() []*order.Order {
	orders := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		di, dj := orders[i].DeliveryDate(), orders[j].DeliveryDate()
		if !di.IsEqual(dj) {
			return di.Before(dj)
		}
		if orders[i].RouteOrder() != orders[j].RouteOrder() {
			return orders[i].RouteOrder() < orders[j].RouteOrder()
		}
		return orders[i].ID().String() < orders[j].ID().String()
	})
	return orders
}
