package commands_test

import (
	"testing"

	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/commands"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewResequenceRouteCommand(t *testing.T) {
	t.Run("rejects a zero date", func(t *testing.T) {
		_, err := commands.NewResequenceRouteCommand(kernel.Date{}, nil)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ResequenceRouteCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrResequenceRouteCommandIsNotConstructed)
	})
}

func TestResequenceRouteCommandHandler_Handle_ClosesGaps(t *testing.T) {
	ctx := t.Context()
	monday := mustDate(t, "2025-01-06")
	first := scheduledOrder(t, monday, 2)
	second := scheduledOrder(t, monday, 7)
	orders := []*order.Order{first, second}

	cmd, err := commands.NewResequenceRouteCommand(monday, nil)
	require.NoError(t, err)

	store := new(MockOrderStore)
	store.On("List", ctx).Return(orders, nil).Once()
	store.On("Upsert", ctx, mock.AnythingOfType("*order.Order")).Return(orders, nil).Twice()

	h := commands.NewResequenceRouteCommandHandler(store)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, first.RouteOrder())
	require.Equal(t, 2, second.RouteOrder())
	store.AssertExpectations(t)
}

func TestResequenceRouteCommandHandler_Handle_TargetOrdering(t *testing.T) {
	ctx := t.Context()
	monday := mustDate(t, "2025-01-06")
	first := scheduledOrder(t, monday, 1)
	second := scheduledOrder(t, monday, 2)
	third := scheduledOrder(t, monday, 3)
	orders := []*order.Order{first, second, third}

	t.Run("the submitted ordering becomes the visit order", func(t *testing.T) {
		cmd, err := commands.NewResequenceRouteCommand(monday,
			[]kernel.UUID{third.ID(), first.ID(), second.ID()})
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("List", ctx).Return(orders, nil).Once()
		store.On("Upsert", ctx, mock.AnythingOfType("*order.Order")).Return(orders, nil).Times(3)

		h := commands.NewResequenceRouteCommandHandler(store)
		_, err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.Equal(t, 1, third.RouteOrder())
		require.Equal(t, 2, first.RouteOrder())
		require.Equal(t, 3, second.RouteOrder())
		store.AssertExpectations(t)
	})

	t.Run("an incomplete ordering writes nothing", func(t *testing.T) {
		cmd, err := commands.NewResequenceRouteCommand(monday,
			[]kernel.UUID{first.ID()})
		require.NoError(t, err)

		store := new(MockOrderStore)
		store.On("List", ctx).Return(orders, nil).Once()

		h := commands.NewResequenceRouteCommandHandler(store)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestResequenceRouteCommandHandler_Handle_DenseDayIsNoOp(t *testing.T) {
	ctx := t.Context()
	monday := mustDate(t, "2025-01-06")
	first := scheduledOrder(t, monday, 1)

	cmd, err := commands.NewResequenceRouteCommand(monday, nil)
	require.NoError(t, err)

	store := new(MockOrderStore)
	store.On("List", ctx).Return([]*order.Order{first}, nil).Once()

	h := commands.NewResequenceRouteCommandHandler(store)
	orders, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestResequenceRouteCommandHandler_Handle_EmptyDateIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewResequenceRouteCommand(mustDate(t, "2025-02-03"), nil)
	require.NoError(t, err)

	store := new(MockOrderStore)
	store.On("List", ctx).Return([]*order.Order{}, nil).Once()

	h := commands.NewResequenceRouteCommandHandler(store)
	orders, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Empty(t, orders)
}
