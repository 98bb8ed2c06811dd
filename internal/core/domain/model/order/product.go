package order

import (
	"fmt"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through one of the constructor functions.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
	"Product must be created via NewProduct or RestoreProduct")

// maxQuantity bounds a line item's quantity. The order book serves a single
// vendor's daily routes; anything past this is operator error.
const maxQuantity = 1000

// Product is one line item of an order: a named product, the quantity and
// unit it is sold in, and its pricing.
//
// Product is an immutable value object. Its invariant is that the line total
// always equals the unit price times the quantity; the With* methods return
// recomputed copies instead of mutating in place, so a Product can never be
// observed mid-update.
type Product struct {
	name      string
	quantity  int
	unit      string
	unitPrice kernel.Money
	lineTotal kernel.Money

	isConstructed bool
}

// NewProduct creates a line item and computes its total from the unit price
// and quantity.
//
// Validation rules:
//   - name and unit are required
//   - quantity must be between 1 and 1000
//   - unitPrice must not be negative
func NewProduct(name string, quantity int, unit string, unitPrice kernel.Money) (Product, error) {
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("product name")
	}
	if unit == "" {
		return Product{}, errs.NewValueIsRequiredError("product unit")
	}
	if quantity < 1 || quantity > maxQuantity {
		return Product{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	if unitPrice.IsNegative() {
		return Product{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return Product{
		name:          name,
		quantity:      quantity,
		unit:          unit,
		unitPrice:     unitPrice,
		lineTotal:     unitPrice.MulInt(quantity),
		isConstructed: true,
	}, nil
}

// RestoreProduct rehydrates a line item from persistence. The persisted line
// total must match the recomputed one; a mismatch means the stored record
// was corrupted outside the application.
func RestoreProduct(name string, quantity int, unit string, unitPrice, lineTotal kernel.Money) (Product, error) {
	product, err := NewProduct(name, quantity, unit, unitPrice)
	if err != nil {
		return Product{}, err
	}

	if !product.lineTotal.IsEqual(lineTotal) {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("lineTotal",
			fmt.Errorf("stored total %s does not equal %s x %d", lineTotal, unitPrice, quantity))
	}

	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Quantity returns how many units are ordered.
func (p Product) Quantity() int {
	return p.quantity
}

// Unit returns the selling unit (unidades, kilos, libra, ...).
func (p Product) Unit() string {
	return p.unit
}

// UnitPrice returns the price of one unit.
func (p Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// LineTotal returns unitPrice times quantity.
func (p Product) LineTotal() kernel.Money {
	return p.lineTotal
}

// WithQuantity returns a copy with the new quantity and a recomputed line
// total. The unit price is untouched: changing how many arepas are ordered
// does not reprice them.
func (p Product) WithQuantity(quantity int) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return NewProduct(p.name, quantity, p.unit, p.unitPrice)
}

// WithPricing returns a copy selling a (possibly different) product and
// unit at the given unit price, keeping the quantity. Callers derive the
// price from the product catalog whenever the name or unit changes.
func (p Product) WithPricing(name, unit string, unitPrice kernel.Money) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return NewProduct(name, p.quantity, unit, unitPrice)
}

// IsEqual compares two line items field by field.
func (p Product) IsEqual(other Product) bool {
	return p.name == other.name &&
		p.quantity == other.quantity &&
		p.unit == other.unit &&
		p.unitPrice.IsEqual(other.unitPrice) &&
		p.lineTotal.IsEqual(other.lineTotal)
}
