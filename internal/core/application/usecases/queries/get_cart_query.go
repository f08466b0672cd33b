// Package queries contains the read side: carts, catalog pages and order boards.
// Handlers read straight from SQL into response structs and never load aggregates.
package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery returns the actor's active quotation.
//
// Example:
//
//	query := NewGetCartQuery(actor)
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d days, estimate %s\n", cart.Days, cart.Estimate)
type GetCartQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetCartQuery(actor kernel.Actor) GetCartQuery {
	return GetCartQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Actor() kernel.Actor { return q.actor }

// GetCartQueryResponse is the cart view. OrderID is nil while the customer has no
// active quotation. Total is the stored Σ price × quantity; Estimate scales it by Days.
type GetCartQueryResponse struct {
	OrderID   *kernel.UUID
	StartDate time.Time
	EndDate   time.Time
	Days      int
	Total     kernel.Money
	Estimate  kernel.Money
	Lines     []CartLineResponse
}

type CartLineResponse struct {
	LineID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Image       string
	Quantity    int
	Price       kernel.Money
	Subtotal    kernel.Money
}
