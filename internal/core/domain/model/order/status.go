package order

import (
	"fmt"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// Status is the lifecycle state of a rental order.
//
//	QUOTATION ──submit──> PENDING ──> CONFIRMED ──> PICKED_UP ──> RETURNED
//	                         │            │
//	                         └────────────┴──> CANCELLED
//
// RETURNED and CANCELLED are terminal. Each allowed edge is listed in
// transitions together with the role that may trigger it.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Quotation is the customer's mutable cart. At most one per customer.
	Quotation

	// Pending is a submitted quotation awaiting admin confirmation.
	Pending

	// Confirmed orders are accepted and waiting for pickup.
	Confirmed

	// PickedUp means the goods left the warehouse; stock is reserved.
	PickedUp

	// Returned means the goods came back; stock is released. Terminal.
	Returned

	// Cancelled orders never reached pickup. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Quotation: "QUOTATION",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		PickedUp:  "PICKED_UP",
		Returned:  "RETURNED",
		Cancelled: "CANCELLED",
	}
}

type transition struct {
	from Status
	to   Status
}

// transitions holds every legal edge and the role allowed to take it.
// The submit edge belongs to the owning customer, which is checked by RentalOrder.Submit.
func transitions() map[transition]kernel.Role {
	return map[transition]kernel.Role{
		{Quotation, Pending}:  kernel.RoleCustomer,
		{Pending, Confirmed}:  kernel.RoleAdmin,
		{Pending, Cancelled}:  kernel.RoleAdmin,
		{Confirmed, PickedUp}: kernel.RoleAdmin,
		{PickedUp, Returned}:  kernel.RoleAdmin,
	}
}

// ParseStatus maps the persisted / wire name (e.g. "PICKED_UP") to a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Returned || s == Cancelled
}

// CanTransitionTo reports whether (s, target) is in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := transitions()[transition{s, target}]
	return ok
}

// TransitionTo validates the edge (s, target) for a caller with the given role.
//
// Returns:
//   - (target, nil) when the edge exists and role may take it
//   - ValueIsInvalidError when target is not a known status
//   - IllegalTransitionError when the edge is absent
//   - ForbiddenError when the edge belongs to another role
func (s Status) TransitionTo(target Status, role kernel.Role) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	allowed, ok := transitions()[transition{s, target}]
	if !ok {
		return Unknown, errs.NewIllegalTransitionError(s, target)
	}

	if allowed != role {
		return Unknown, errs.NewForbiddenError(
			fmt.Sprintf("change status %s -> %s", s, target),
			fmt.Sprintf("requires %s", allowed),
		)
	}

	return target, nil
}
