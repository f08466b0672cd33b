// Package order implements the RentalOrder aggregate: the customer's quotation (cart)
// and the lifecycle it follows after submission.
//
// The package includes:
//   - RentalOrder: aggregate root owning its lines, rental window and stored total
//   - Line: a product with quantity and the daily price captured at add time
//   - Status: the lifecycle state with an explicit (from, to) -> role transition table
//
// Key business rules:
//   - the stored total is Σ price × quantity; duration scaling is a read-side estimate only
//   - a quotation is editable, every other status freezes lines and dates
//   - QUOTATION -> PENDING is taken by the owner; every other edge by an ADMIN
//   - RETURNED and CANCELLED are terminal
package order
