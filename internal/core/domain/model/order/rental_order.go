package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var (
	// ErrRentalOrderIsNotConstructed is returned for orders not built by NewQuotation or RestoreRentalOrder.
	ErrRentalOrderIsNotConstructed = errors.New("RentalOrder must be created via NewQuotation or RestoreRentalOrder")

	// ErrOrderIsNotQuotation is returned when lines or dates change after submission.
	ErrOrderIsNotQuotation = errs.NewValueIsInvalidErrorWithCause("order", errors.New("order is no longer a quotation"))

	// ErrQuotationIsEmpty is returned when submitting a quotation without lines.
	ErrQuotationIsEmpty = errs.NewValueIsInvalidErrorWithCause("order", errors.New("quotation has no lines"))
)

// StatusChanged is recorded by the aggregate on every successful transition.
// Command handlers read it after commit to notify interested parties.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	From       Status
	To         Status
	Total      kernel.Money
	OccurredAt time.Time
}

// RentalOrder is the aggregate root of the rental workflow. In QUOTATION status it
// is the customer's cart; after submission it moves through the admin-driven lifecycle.
//
// Invariants:
//   - total always equals Σ line.price × line.quantity (never scaled by rental days)
//   - at most one line per product; repeated adds increment quantity
//   - lines and the rental window only change while status is QUOTATION
//   - status only moves along the transition table in status.go
type RentalOrder struct {
	id         kernel.UUID
	customerID kernel.UUID
	status     Status
	period     kernel.DateRange
	lines      []*Line
	total      kernel.Money
	createdAt  time.Time

	events []StatusChanged

	isConstructed bool
}

// NewQuotation opens an empty cart for customerID over period.
//
// Example:
//
//	q, err := order.NewQuotation(kernel.NewUUID(), actor.ID(), kernel.DefaultDateRange(now), now)
//	if err != nil {
//	    return err
//	}
//	_, err = q.AddProduct(kernel.NewUUID(), productID, price)
func NewQuotation(id, customerID kernel.UUID, period kernel.DateRange, createdAt time.Time) (*RentalOrder, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		period.Validate(),
	); err != nil {
		return nil, err
	}

	return &RentalOrder{
		id:            id,
		customerID:    customerID,
		status:        Quotation,
		period:        period,
		lines:         make([]*Line, 0),
		total:         kernel.ZeroMoney(),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRentalOrder rebuilds a persisted order. The stored total is kept as-is.
func RestoreRentalOrder(
	id, customerID kernel.UUID,
	status Status,
	period kernel.DateRange,
	total kernel.Money,
	createdAt time.Time,
	lines []*Line,
) (*RentalOrder, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
		period.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	return &RentalOrder{
		id:            id,
		customerID:    customerID,
		status:        status,
		period:        period,
		lines:         slices.Clone(lines),
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (o *RentalOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrRentalOrderIsNotConstructed
	}
	return nil
}

func (o *RentalOrder) ID() kernel.UUID { return o.id }
func (o *RentalOrder) CustomerID() kernel.UUID { return o.customerID }
func (o *RentalOrder) Status() Status { return o.status }
func (o *RentalOrder) Period() kernel.DateRange { return o.period }
func (o *RentalOrder) Total() kernel.Money { return o.total }
func (o *RentalOrder) CreatedAt() time.Time { return o.createdAt }
func (o *RentalOrder) Events() []StatusChanged { return slices.Clone(o.events) }
func (o *RentalOrder) Lines() []*Line { return slices.Clone(o.lines) }
func (o *RentalOrder) IsOwnedBy(a kernel.Actor) bool { return a.Is(o.customerID) }

// Line finds a line by its id.
func (o *RentalOrder) Line(lineID kernel.UUID) (*Line, bool) {
	i := o.lineIndex(func(l *Line) bool { return l.id.IsEqual(lineID) })
	if i < 0 {
		return nil, false
	}
	return o.lines[i], true
}

// Reschedule overwrites the rental window.
func (o *RentalOrder) Reschedule(period kernel.DateRange) error {
	if o.status != Quotation {
		return ErrOrderIsNotQuotation
	}
	if err := period.Validate(); err != nil {
		return err
	}
	o.period = period
	return nil
}

// AddProduct increments the quantity of the line holding productID, or appends a new
// line with quantity 1 priced at price. The returned line is the one that changed.
// An existing line keeps its original price snapshot.
func (o *RentalOrder) AddProduct(lineID, productID kernel.UUID, price kernel.Money) (*Line, error) {
	if o.status != Quotation {
		return nil, ErrOrderIsNotQuotation
	}

	if i := o.lineIndex(func(l *Line) bool { return l.productID.IsEqual(productID) }); i >= 0 {
		o.lines[i].increment()
		o.recalculateTotal()
		return o.lines[i], nil
	}

	line, err := NewLine(lineID, productID, price)
	if err != nil {
		return nil, err
	}
	o.lines = append(o.lines, line)
	o.recalculateTotal()

	return line, nil
}

// RemoveLine deletes the whole line regardless of its quantity.
func (o *RentalOrder) RemoveLine(lineID kernel.UUID) error {
	if o.status != Quotation {
		return ErrOrderIsNotQuotation
	}

	i := o.lineIndex(func(l *Line) bool { return l.id.IsEqual(lineID) })
	if i < 0 {
		return errs.NewObjectNotFoundError("orderLine", lineID.String())
	}

	o.lines = slices.Delete(o.lines, i, i+1)
	o.recalculateTotal()
	return nil
}

// Submit moves the quotation to PENDING on behalf of its owner.
//
// Returns:
//   - errs.ErrUnauthenticated for the anonymous actor
//   - ForbiddenError when the actor does not own the order
//   - IllegalTransitionError when the order is no longer a quotation
//   - ErrQuotationIsEmpty when there is nothing to rent
func (o *RentalOrder) Submit(actor kernel.Actor) error {
	if err := actor.Authenticate(); err != nil {
		return err
	}
	if !o.IsOwnedBy(actor) {
		return errs.NewForbiddenError("submit quotation", "only the owner may submit")
	}

	// The submit edge is owned by the customer role; ownership was checked above.
	next, err := o.status.TransitionTo(Pending, kernel.RoleCustomer)
	if err != nil {
		return err
	}
	if len(o.lines) == 0 {
		return ErrQuotationIsEmpty
	}

	o.moveTo(next)
	return nil
}

// ChangeStatus applies an administrative transition and returns the previous status.
func (o *RentalOrder) ChangeStatus(target Status, actor kernel.Actor) (Status, error) {
	if err := actor.Authenticate(); err != nil {
		return Unknown, err
	}
	if !actor.IsAdmin() {
		return Unknown, errs.NewForbiddenError(
			fmt.Sprintf("change status to %s", target),
			fmt.Sprintf("requires %s", kernel.RoleAdmin),
		)
	}

	next, err := o.status.TransitionTo(target, actor.Role())
	if err != nil {
		return Unknown, err
	}

	previous := o.status
	o.moveTo(next)
	return previous, nil
}

func (o *RentalOrder) moveTo(next Status) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		From:       o.status,
		To:         next,
		Total:      o.total,
		OccurredAt: time.Now().UTC(),
	})
	o.status = next
}

func (o *RentalOrder) recalculateTotal() {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	o.total = total
}

func (o *RentalOrder) lineIndex(match func(*Line) bool) int {
	return slices.IndexFunc(o.lines, match)
}
