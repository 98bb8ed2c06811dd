// Package services contains the stateless domain services of the order
// book:
//
//   - Aggregator: pure grouping and totaling over an order set (by calendar
//     date and by ISO week), used by every schedule view
//   - RouteSequencer: maintains the dense 1..N delivery sequence of a day's
//     orders across inserts, moves, and explicit resequencing
//
// Both services are pure: they never touch persistence and they return new
// orderings instead of mutating shared slices, so callers can compute a
// target state and persist it separately.
package services
