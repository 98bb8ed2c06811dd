package queries_test

import (
	"testing"

	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/queries"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestGetScheduleSummaryQueryHandler_Handle(t *testing.T) {
	t.Run("summarizes weeks most recent first", func(t *testing.T) {
		ctx := t.Context()
		older := orderAt(t, mustDate(t, "2025-01-06"), 1, 24000, true)
		olderToo := orderAt(t, mustDate(t, "2025-01-08"), 1, 8000, false)
		newer := orderAt(t, mustDate(t, "2025-01-14"), 1, 3000, false)

		store := new(MockOrderStore)
		store.On("List", ctx).Return([]*order.Order{older, olderToo, newer}, nil).Once()

		h := queries.NewGetScheduleSummaryQueryHandler(store)
		summary, err := h.Handle(ctx, queries.NewGetScheduleSummaryQuery())

		require.NoError(t, err)
		require.Equal(t, 3, summary.OrderCount)
		require.True(t, summary.Totals.Total.IsEqual(kernel.MoneyFromInt(35000)))
		require.True(t, summary.Totals.Pending.IsEqual(kernel.MoneyFromInt(11000)))

		require.Len(t, summary.Dates, 3)
		require.Equal(t, "2025-01-06", summary.Dates[0].String())
		require.Equal(t, "2025-01-14", summary.Dates[2].String())

		require.Len(t, summary.Weeks, 2)
		require.Equal(t, "2025-01-13", summary.Weeks[0].WeekStart.String())
		require.Equal(t, 1, summary.Weeks[0].OrderCount)
		require.Equal(t, "2025-01-06", summary.Weeks[1].WeekStart.String())
		require.Equal(t, 2, summary.Weeks[1].OrderCount)
		require.Equal(t, 1, summary.Weeks[1].DeliveredCount)
		require.True(t, summary.Weeks[1].Totals.Delivered.IsEqual(kernel.MoneyFromInt(24000)))
	})

	t.Run("an empty book yields an empty summary", func(t *testing.T) {
		ctx := t.Context()
		store := new(MockOrderStore)
		store.On("List", ctx).Return([]*order.Order{}, nil).Once()

		h := queries.NewGetScheduleSummaryQueryHandler(store)
		summary, err := h.Handle(ctx, queries.NewGetScheduleSummaryQuery())

		require.NoError(t, err)
		require.Zero(t, summary.OrderCount)
		require.Empty(t, summary.Dates)
		require.Empty(t, summary.Weeks)
		require.True(t, summary.Totals.Total.IsZero())
	})

	t.Run("a zero value query fails validation", func(t *testing.T) {
		var query queries.GetScheduleSummaryQuery

		h := queries.NewGetScheduleSummaryQueryHandler(new(MockOrderStore))
		_, err := h.Handle(t.Context(), query)

		require.ErrorIs(t, err, queries.ErrGetScheduleSummaryQueryIsNotConstructed)
	})
}
