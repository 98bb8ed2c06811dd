package commands_test

import (
	"context"
	"testing"

	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/commands"
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

func arepaLines() []commands.ProductLine {
	return []commands.ProductLine{
		{Name: "Arepas de maíz", Quantity: 10, Unit: "unidades"},
	}
}

func scheduledOrder(t *testing.T, date kernel.Date, position int) *order.Order {
	t.Helper()

	arepas, err := order.NewProduct("Arepas de maíz", 10, "unidades", kernel.MoneyFromInt(1500))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		CustomerName: "Doña Marta",
		Address:      "Calle 45 #12-30",
		DeliveryTime: "8:00",
		TimeFormat:   order.AM,
		DeliveryDate: date,
		Products:     []order.Product{arepas},
	})
	require.NoError(t, err)
	if position > 0 {
		require.NoError(t, o.AssignRouteOrder(position))
	}
	return o
}
