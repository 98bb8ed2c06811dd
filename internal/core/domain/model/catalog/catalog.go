// Package catalog provides the vendor's product price table. A product is
// priced either flat (one price regardless of unit) or per unit (a cheese
// sold by the kilo costs more than by the libra). The two cases are modeled
// as a sealed Price variant instead of inspecting the shape of a raw value.
//
// The catalog is static configuration: line items read it to derive their
// unit price when the product or unit changes, and nothing mutates it.
package catalog

import (
	"fmt"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// Price is the pricing variant of a catalog item. The only implementations
// are FlatPrice and PerUnitPrice.
type Price interface {
	isPrice()
}

// FlatPrice prices a product at one amount regardless of the selling unit.
type FlatPrice struct {
	Amount kernel.Money
}

func (FlatPrice) isPrice() {}

// PerUnitPrice prices a product separately for each selling unit.
type PerUnitPrice struct {
	PerUnit map[string]kernel.Money
}

func (PerUnitPrice) isPrice() {}

// Item is one product entry: its display name, the units it may be sold in,
// and its price variant.
type Item struct {
	name  string
	units []string
	price Price
}

// NewItem creates a catalog entry. Per-unit priced items must carry a price
// for every unit they are sold in; negative prices are rejected.
func NewItem(name string, units []string, price Price) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if len(units) == 0 {
		return Item{}, errs.NewValueIsRequiredError("product units")
	}

	switch p := price.(type) {
	case FlatPrice:
		if p.Amount.IsNegative() {
			return Item{}, errs.NewValueIsInvalidError("product price")
		}
	case PerUnitPrice:
		for _, unit := range units {
			amount, ok := p.PerUnit[unit]
			if !ok {
				return Item{}, errs.NewValueIsInvalidErrorWithCause(
					"product price", fmt.Errorf("no price for unit %q", unit))
			}
			if amount.IsNegative() {
				return Item{}, errs.NewValueIsInvalidError("product price")
			}
		}
	default:
		return Item{}, errs.NewValueIsRequiredError("product price")
	}

	return Item{name: name, units: append([]string(nil), units...), price: price}, nil
}

// Name returns the product's display name, the lookup key for pricing.
func (i Item) Name() string {
	return i.name
}

// Units returns the units the product may be sold in, first unit is the
// default offered to the operator.
func (i Item) Units() []string {
	return append([]string(nil), i.units...)
}

// Catalog is the static name-to-price mapping used to derive line item
// unit prices.
type Catalog struct {
	items map[string]Item
	names []string
}

// NewCatalog builds a catalog from items. Duplicate product names are
// rejected.
func NewCatalog(items ...Item) (Catalog, error) {
	c := Catalog{items: make(map[string]Item, len(items))}
	for _, item := range items {
		if item.name == "" {
			return Catalog{}, errs.NewValueIsRequiredError("product name")
		}
		if _, exists := c.items[item.name]; exists {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
				"catalog", fmt.Errorf("duplicate product %q", item.name))
		}
		c.items[item.name] = item
		c.names = append(c.names, item.name)
	}
	return c, nil
}

// UnitPrice returns the price of one unit of the named product. Unknown
// products and units a product is not sold in are reported as not found.
func (c Catalog) UnitPrice(name, unit string) (kernel.Money, error) {
	item, ok := c.items[name]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("product", name)
	}

	switch p := item.price.(type) {
	case FlatPrice:
		return p.Amount, nil
	case PerUnitPrice:
		amount, ok := p.PerUnit[unit]
		if !ok {
			return kernel.Money{}, errs.NewObjectNotFoundError("product unit", fmt.Sprintf("%s/%s", name, unit))
		}
		return amount, nil
	default:
		return kernel.Money{}, errs.NewValueIsInvalidError("product price")
	}
}

// Units returns the selling units of the named product.
func (c Catalog) Units(name string) ([]string, error) {
	item, ok := c.items[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", name)
	}
	return item.Units(), nil
}

// Items returns all catalog entries in their declared order.
func (c Catalog) Items() []Item {
	items := make([]Item, 0, len(c.names))
	for _, name := range c.names {
		items = append(items, c.items[name])
	}
	return items
}

// DefaultCatalog returns the vendor's product list: arepas and corn dough,
// cheeses with per-unit kilo/libra pricing, and sides. Prices are in
// Colombian pesos.
func DefaultCatalog() Catalog {
	mustItem := func(name string, units []string, price Price) Item {
		item, err := NewItem(name, units, price)
		if err != nil {
			panic(err)
		}
		return item
	}

	c, err := NewCatalog(
		mustItem("Arepas de maíz", []string{"unidades"}, FlatPrice{Amount: kernel.MoneyFromInt(1500)}),
		mustItem("Kilos de masa de maíz", []string{"kilos"}, FlatPrice{Amount: kernel.MoneyFromInt(4000)}),
		mustItem("Queso tipo paisa", []string{"kilo", "libra"}, PerUnitPrice{PerUnit: map[string]kernel.Money{
			"kilo":  kernel.MoneyFromInt(18000),
			"libra": kernel.MoneyFromInt(8000),
		}}),
		mustItem("Queso semiduro", []string{"kilo", "libra"}, PerUnitPrice{PerUnit: map[string]kernel.Money{
			"kilo":  kernel.MoneyFromInt(20000),
			"libra": kernel.MoneyFromInt(9000),
		}}),
		mustItem("Limones", []string{"unidades"}, FlatPrice{Amount: kernel.MoneyFromInt(500)}),
		mustItem("Chorizos", []string{"unidades"}, FlatPrice{Amount: kernel.MoneyFromInt(3000)}),
		mustItem("Mora", []string{"kilos"}, FlatPrice{Amount: kernel.MoneyFromInt(8000)}),
	)
	if err != nil {
		panic(err)
	}
	return c
}
