// Package errs provides the typed errors shared by the rental core and its adapters.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsInvalid, ...)
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Unwrap returning the sentinel so errors.Is works across layers
//
// KindOf maps any error to one of the kinds the presentation boundary
// understands: Unauthenticated, Forbidden, NotFound, IllegalTransition,
// ValidationError and StorageError.
package errs
