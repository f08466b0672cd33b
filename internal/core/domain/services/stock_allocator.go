package services

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/errs"
)

var ErrProductsAreRequired = errors.New("products are required to adjust stock")

// StockAllocator applies the stock side effect of an order status change.
//
// Entering PICKED_UP reserves each line's quantity from its product. Entering
// RETURNED releases it. Every other transition leaves stock untouched.
//
// Example:
//
//	previous, err := o.ChangeStatus(order.PickedUp, admin)
//	...
//	if allocator.AffectsStock(o.Status()) {
//	    products, _ := repo.GetManyForUpdate(ctx, allocator.ProductIDs(o))
//	    changed, err := allocator.Apply(o, products)
//	}
type StockAllocator struct{}

func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// AffectsStock reports whether entering status changes stock.
func (StockAllocator) AffectsStock(status order.Status) bool {
	return status == order.PickedUp || status == order.Returned
}

// ProductIDs lists the distinct products referenced by the order lines.
func (StockAllocator) ProductIDs(o *order.RentalOrder) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.Lines()))
	seen := make(map[kernel.UUID]struct{}, len(o.Lines()))
	for _, l := range o.Lines() {
		if _, ok := seen[l.ProductID()]; ok {
			continue
		}
		seen[l.ProductID()] = struct{}{}
		ids = append(ids, l.ProductID())
	}
	return ids
}

// Apply adjusts products for the order's current status and returns the products it changed.
// On error some products may already be adjusted; callers discard them by rolling back.
func (a StockAllocator) Apply(o *order.RentalOrder, products []*product.Product) ([]*product.Product, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !a.AffectsStock(o.Status()) {
		return nil, nil
	}
	if len(products) == 0 && len(o.Lines()) > 0 {
		return nil, ErrProductsAreRequired
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	changed := make([]*product.Product, 0, len(products))
	touched := make(map[kernel.UUID]struct{}, len(products))
	for _, l := range o.Lines() {
		p, ok := byID[l.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", l.ProductID().String())
		}

		var err error
		if o.Status() == order.PickedUp {
			err = p.Reserve(l.Quantity())
		} else {
			err = p.Release(l.Quantity())
		}
		if err != nil {
			return nil, err
		}

		if _, ok := touched[p.ID()]; !ok {
			touched[p.ID()] = struct{}{}
			changed = append(changed, p)
		}
	}

	return changed, nil
}
