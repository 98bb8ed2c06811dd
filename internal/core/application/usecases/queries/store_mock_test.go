package queries_test

import (
	"context"
	"testing"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) Upsert(ctx context.Context, aggregate *order.Order) ([]*order.Order, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) DeleteByID(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func mustDate(t *testing.T, value string) kernel.Date {
	t.Helper()
	date, err := kernel.DateFromString(value)
	require.NoError(t, err)
	return date
}

func orderAt(t *testing.T, date kernel.Date, position int, amount int64, delivered bool) *order.Order {
	t.Helper()

	product, err := order.NewProduct("Chorizos", 1, "unidades", kernel.MoneyFromInt(amount))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		CustomerName: "Don Gustavo",
		Address:      "Carrera 7 #80-12",
		DeliveryTime: "10:30",
		TimeFormat:   order.AM,
		DeliveryDate: date,
		Products:     []order.Product{product},
	})
	require.NoError(t, err)
	if position > 0 {
		require.NoError(t, o.AssignRouteOrder(position))
	}
	if delivered {
		require.NoError(t, o.MarkDelivered(order.PaymentCash))
	}
	return o
}
