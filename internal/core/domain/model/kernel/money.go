package kernel

import (
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount of Colombian pesos. It exists so that
// order totals and the collected/outstanding split never accumulate
// floating-point drift: pending is always computed as total minus delivered,
// and with exact decimals that subtraction is exact.
//
// The zero value is a valid zero-peso amount. Money is immutable; arithmetic
// methods return new values.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromInt creates an amount of whole pesos. Catalog prices are whole
// pesos, so this is the common constructor.
func MoneyFromInt(pesos int64) Money {
	return Money{amount: decimal.NewFromInt(pesos)}
}

// MoneyFromString parses a decimal amount, as persisted in numeric columns.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: amount}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns m multiplied by a whole quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value, for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount in plain decimal notation.
func (m Money) String() string {
	return m.amount.String()
}
