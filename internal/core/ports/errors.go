package ports

import (
	"errors"

	"rental/internal/pkg/errs"
)

var (
	// ErrActiveQuotationExists is returned when a concurrent request already opened the customer's cart.
	ErrActiveQuotationExists = errors.New("customer already has an active quotation")

	// ErrProductIsReferenced is returned when deleting a product that order lines still point to.
	ErrProductIsReferenced = errs.NewValueIsInvalidErrorWithCause(
		"product",
		errors.New("cannot delete product, it might be in an active order"),
	)

	// ErrUserIsReferenced is returned when deleting a user who still owns orders or products.
	ErrUserIsReferenced = errs.NewValueIsInvalidErrorWithCause(
		"user",
		errors.New("cannot delete user, check for active orders or products"),
	)
)
