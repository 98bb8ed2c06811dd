// Package order provides the domain entities and business logic of the
// order book. It implements the Order aggregate root together with its
// Product line items and the TimeFormat and PaymentMethod value types.
//
// Key business rules:
//   - Orders must carry a customer name, address, delivery time, delivery
//     date, and at least one product line before they are accepted for save
//   - A line item's total always equals its unit price times its quantity
//   - An order's total always equals the sum of its line totals
//   - A payment method is recorded if and only if the order is delivered,
//     and marking an order delivered changes nothing else
//   - routeOrder positions an order within its delivery date only; it is
//     assigned by the route sequencer, never by the aggregate itself
//   - id and createdAt are immutable once assigned
//
// The package follows the same conventions as the rest of the domain model:
// private fields, validating constructors, a RestoreOrder path for
// rehydration from persistence, and value semantics for everything but the
// aggregate root.
package order
