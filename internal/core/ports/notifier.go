package ports

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
)

// EventType names what happened to an order.
type EventType string

const (
	EventQuotationSubmitted EventType = "QUOTATION_SUBMITTED"
	EventStatusChanged      EventType = "ORDER_STATUS_CHANGED"
	EventRentalOverdue      EventType = "RENTAL_OVERDUE"
)

// OrderEvent is delivered to notifiers after the change is committed.
type OrderEvent struct {
	Type       EventType
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	FromStatus string
	ToStatus   string
	Total      string
	EndDate    time.Time
	OccurredAt time.Time
}

// Notifier delivers order events to customers and downstream systems.
// Delivery is best effort: callers log failures and never undo the committed change.
type Notifier interface {
	Notify(ctx context.Context, event OrderEvent) error
}

// Contact is how a customer can be reached.
type Contact struct {
	Email string
	Name  string
}

// CustomerDirectory resolves customer contact details owned by the identity service.
type CustomerDirectory interface {
	Contact(ctx context.Context, customerID kernel.UUID) (Contact, error)
}
