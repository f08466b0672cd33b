// Package kernel holds the value objects shared by every rental aggregate:
//   - UUID: identifiers for orders, lines, products, categories and actors
//   - Money: non-negative decimal amounts (daily prices, line prices, totals)
//   - DateRange: the rental window of a quotation, counted in whole days
//   - Actor and Role: the authenticated caller, passed explicitly into every operation
//
// All values are immutable and must be created through their constructors;
// zero values fail Validate.
package kernel
