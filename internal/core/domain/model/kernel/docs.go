// Package kernel provides the shared value objects of the domain model:
//
//   - UUID: validated order identity, wrapping github.com/google/uuid
//   - Date: a calendar date in ISO form, with ISO-week derivation (the
//     Monday on/before a date keys the week it belongs to)
//   - Money: exact decimal currency amounts in Colombian pesos, backed by
//     github.com/shopspring/decimal so that totals never drift under
//     floating-point error
//
// All value objects are immutable. Zero values of UUID and Date are invalid
// and fail Validate; the zero Money is a valid zero-peso amount.
package kernel
