package order_test

import (
	"testing"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("computes line total from unit price and quantity", func(t *testing.T) {
		p, err := order.NewProduct("Arepas de maíz", 3, "unidades", kernel.MoneyFromInt(8000))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Arepas de maíz", p.Name())
		assert.Equal(t, 3, p.Quantity())
		assert.Equal(t, "unidades", p.Unit())
		assert.True(t, p.LineTotal().IsEqual(kernel.MoneyFromInt(24000)))
	})

	t.Run("requires name and unit", func(t *testing.T) {
		_, err := order.NewProduct("", 1, "unidades", kernel.MoneyFromInt(100))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewProduct("Limones", 1, "", kernel.MoneyFromInt(100))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewProduct("Limones", 0, "unidades", kernel.MoneyFromInt(100))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		negative := kernel.Money{}.Sub(kernel.MoneyFromInt(100))
		_, err := order.NewProduct("Limones", 1, "unidades", negative)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p order.Product
		require.ErrorIs(t, p.Validate(), errs.ErrValueIsRequired)
	})
}

func TestProduct_WithQuantity(t *testing.T) {
	t.Run("recomputes total and keeps unit price", func(t *testing.T) {
		p, err := order.NewProduct("Arepas de maíz", 3, "unidades", kernel.MoneyFromInt(8000))
		require.NoError(t, err)

		changed, err := p.WithQuantity(5)

		require.NoError(t, err)
		assert.True(t, changed.UnitPrice().IsEqual(kernel.MoneyFromInt(8000)))
		assert.True(t, changed.LineTotal().IsEqual(kernel.MoneyFromInt(40000)))
		// The original value is untouched.
		assert.Equal(t, 3, p.Quantity())
		assert.True(t, p.LineTotal().IsEqual(kernel.MoneyFromInt(24000)))
	})
}

func TestProduct_WithPricing(t *testing.T) {
	t.Run("switching unit reprices the line", func(t *testing.T) {
		p, err := order.NewProduct("Queso tipo paisa", 2, "kilo", kernel.MoneyFromInt(18000))
		require.NoError(t, err)

		changed, err := p.WithPricing("Queso tipo paisa", "libra", kernel.MoneyFromInt(8000))

		require.NoError(t, err)
		assert.Equal(t, 2, changed.Quantity())
		assert.Equal(t, "libra", changed.Unit())
		assert.True(t, changed.LineTotal().IsEqual(kernel.MoneyFromInt(16000)))
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("accepts a consistent persisted line", func(t *testing.T) {
		p, err := order.RestoreProduct("Mora", 2, "kilos",
			kernel.MoneyFromInt(8000), kernel.MoneyFromInt(16000))

		require.NoError(t, err)
		assert.True(t, p.LineTotal().IsEqual(kernel.MoneyFromInt(16000)))
	})

	t.Run("rejects a corrupted line total", func(t *testing.T) {
		_, err := order.RestoreProduct("Mora", 2, "kilos",
			kernel.MoneyFromInt(8000), kernel.MoneyFromInt(15000))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "lineTotal")
	})
}
