package queries_test

import (
	"testing"

	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/queries"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestGetWeekScheduleQueryHandler_Handle(t *testing.T) {
	t.Run("groups the week's orders by day", func(t *testing.T) {
		ctx := t.Context()
		monday := orderAt(t, mustDate(t, "2025-01-06"), 1, 24000, false)
		sunday := orderAt(t, mustDate(t, "2025-01-12"), 1, 8000, true)
		nextWeek := orderAt(t, mustDate(t, "2025-01-13"), 1, 3000, false)

		store := new(MockOrderStore)
		store.On("List", ctx).Return([]*order.Order{monday, sunday, nextWeek}, nil).Once()

		// Any day of the week selects the same week.
		query, err := queries.NewGetWeekScheduleQuery(mustDate(t, "2025-01-08"))
		require.NoError(t, err)

		h := queries.NewGetWeekScheduleQueryHandler(store)
		week, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Equal(t, "2025-01-06", week.WeekStart.String())
		require.Equal(t, "2025-01-12", week.WeekEnd.String())
		require.Len(t, week.Days, 2)
		require.Equal(t, "2025-01-06", week.Days[0].Date.String())
		require.Equal(t, "2025-01-12", week.Days[1].Date.String())
		require.True(t, week.Totals.Total.IsEqual(kernel.MoneyFromInt(32000)))
		require.True(t, week.Totals.Pending.IsEqual(kernel.MoneyFromInt(24000)))
	})

	t.Run("an empty week yields no days and zero totals", func(t *testing.T) {
		ctx := t.Context()
		store := new(MockOrderStore)
		store.On("List", ctx).Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetWeekScheduleQuery(mustDate(t, "2025-01-06"))
		require.NoError(t, err)

		h := queries.NewGetWeekScheduleQueryHandler(store)
		week, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Empty(t, week.Days)
		require.True(t, week.Totals.Total.IsZero())
	})

	t.Run("a zero value query fails validation", func(t *testing.T) {
		var query queries.GetWeekScheduleQuery

		h := queries.NewGetWeekScheduleQueryHandler(new(MockOrderStore))
		_, err := h.Handle(t.Context(), query)

		require.ErrorIs(t, err, queries.ErrGetWeekScheduleQueryIsNotConstructed)
	})
}
