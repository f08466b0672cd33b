// Package services provides domain services that span the order and product aggregates.
//
// The package includes:
//   - StockAllocator: reserves and releases product stock as orders are picked up and returned
//   - RentalPricer: the duration-scaled price estimate shown to customers
//
// Neither service persists anything; command handlers load the aggregates, call the
// service and save the result in the same unit of work.
package services
