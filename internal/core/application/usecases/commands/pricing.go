// Package commands contains business operations that modify the order
// book. Each command validates its input at construction and each handler
// persists through the OrderStore port, returning the full order set so
// callers always see the schedule as it stands after the change.
//
// Batched route updates are persisted as independent upserts. Every single
// upsert is idempotent and the full-set result reflects whatever subset
// landed, so a partial failure leaves a readable, retryable schedule
// rather than requiring a transaction across rows.
package commands

import (
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
)

// buildProducts prices the given lines against the catalog and returns the
// resulting product values. Unknown item or unit names surface as not
// found errors from the catalog.
func buildProducts(cat catalog.Catalog, lines []ProductLine) ([]order.Product, error) {
	products := make([]order.Product, 0, len(lines))
	for _, line := range lines {
		price, err := cat.UnitPrice(line.Name, line.Unit)
		if err != nil {
			return nil, err
		}
		product, err := order.NewProduct(line.Name, line.Quantity, line.Unit, price)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
