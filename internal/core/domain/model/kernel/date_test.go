package kernel_test

import (
	"testing"
	"time"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromString(t *testing.T) {
	t.Run("parses ISO dates", func(t *testing.T) {
		d, err := kernel.DateFromString("2025-01-06")

		require.NoError(t, err)
		assert.Equal(t, "2025-01-06", d.String())
		assert.Equal(t, time.Monday, d.Weekday())
	})

	t.Run("rejects non-ISO input", func(t *testing.T) {
		_, err := kernel.DateFromString("06/01/2025")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d kernel.Date
		require.Error(t, d.Validate())
	})
}

func TestDate_WeekStart(t *testing.T) {
	testCases := []struct {
		name      string
		date      string
		weekStart string
	}{
		{name: "monday maps to itself", date: "2025-01-06", weekStart: "2025-01-06"},
		{name: "midweek maps back to monday", date: "2025-01-09", weekStart: "2025-01-06"},
		{name: "sunday closes the week of the preceding monday", date: "2025-01-12", weekStart: "2025-01-06"},
		{name: "next monday starts a new week", date: "2025-01-13", weekStart: "2025-01-13"},
		{name: "week spanning a month boundary", date: "2025-02-01", weekStart: "2025-01-27"},
		{name: "week spanning a year boundary", date: "2025-01-01", weekStart: "2024-12-30"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := kernel.DateFromString(tc.date)
			require.NoError(t, err)

			assert.Equal(t, tc.weekStart, d.WeekStart().String())
			assert.Equal(t, time.Monday, d.WeekStart().Weekday())
		})
	}
}

func TestDate_WeekRange(t *testing.T) {
	t.Run("covers monday through sunday", func(t *testing.T) {
		d, err := kernel.DateFromString("2025-01-08")
		require.NoError(t, err)

		assert.Equal(t, "2025-01-12", d.WeekEnd().String())
		assert.Equal(t, "2025-01-06 - 2025-01-12", d.WeekRange())
	})
}

func TestDate_Ordering(t *testing.T) {
	t.Run("iso strings sort chronologically", func(t *testing.T) {
		earlier, _ := kernel.DateFromString("2025-01-06")
		later, _ := kernel.DateFromString("2025-01-13")

		assert.True(t, earlier.Before(later))
		assert.Less(t, earlier.String(), later.String())
	})

	t.Run("add days crosses month boundaries", func(t *testing.T) {
		d := kernel.NewDate(2025, time.January, 30)
		assert.Equal(t, "2025-02-02", d.AddDays(3).String())
	})

	t.Run("date of truncates timestamps", func(t *testing.T) {
		ts := time.Date(2025, time.January, 6, 17, 45, 12, 0, time.UTC)
		assert.True(t, kernel.DateOf(ts).IsEqual(kernel.NewDate(2025, time.January, 6)))
	})
}
