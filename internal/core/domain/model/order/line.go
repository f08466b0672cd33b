package order

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is one product on a rental order. price is the product's daily price captured
// when the line was first added; later catalog changes never touch it.
type Line struct {
	id            kernel.UUID
	productID     kernel.UUID
	quantity      int
	price         kernel.Money
	isConstructed bool
}

// NewLine creates a line with quantity 1.
func NewLine(id, productID kernel.UUID, price kernel.Money) (*Line, error) {
	return RestoreLine(id, productID, 1, price)
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(id, productID kernel.UUID, quantity int, price kernel.Money) (*Line, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return &Line{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		price:         price,
		isConstructed: true,
	}, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID { return l.id }
func (l *Line) ProductID() kernel.UUID { return l.productID }
func (l *Line) Quantity() int { return l.quantity }
func (l *Line) Price() kernel.Money { return l.price }

// Subtotal is price × quantity.
func (l *Line) Subtotal() kernel.Money {
	return l.price.Times(l.quantity)
}

func (l *Line) increment() {
	l.quantity++
}
