package commands

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
)

// SideEffects runs what follows a committed change: customer notification and
// cache invalidation. Failures are logged and never returned to the caller.
type SideEffects struct {
	notifier ports.Notifier
	views    ports.ViewInvalidator
	logger   *slog.Logger
}

// NewSideEffects wires the post-commit collaborators. Either may be nil.
func NewSideEffects(notifier ports.Notifier, views ports.ViewInvalidator, logger *slog.Logger) SideEffects {
	if logger == nil {
		logger = slog.Default()
	}
	return SideEffects{
		notifier: notifier,
		views:    views,
		logger:   logger.With("component", "command_side_effects"),
	}
}

func (s SideEffects) invalidate(ctx context.Context, keys ...string) {
	if s.views == nil || len(keys) == 0 {
		return
	}
	if err := s.views.Invalidate(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "Failed to invalidate cached views", "keys", keys, "error", err)
	}
}

func (s SideEffects) publish(ctx context.Context, changes []order.StatusChanged) {
	if s.notifier == nil {
		return
	}
	for _, c := range changes {
		event := ports.OrderEvent{
			Type:       ports.EventStatusChanged,
			OrderID:    c.OrderID,
			CustomerID: c.CustomerID,
			FromStatus: c.From.String(),
			ToStatus:   c.To.String(),
			Total:      c.Total.String(),
			OccurredAt: c.OccurredAt,
		}
		if c.From == order.Quotation && c.To == order.Pending {
			event.Type = ports.EventQuotationSubmitted
		}

		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "Failed to notify order event",
				"order_id", c.OrderID.String(), "event", event.Type, "error", err)
		}
	}
}

// remindOverdue notifies the customer of each order and returns how many were delivered.
func (s SideEffects) remindOverdue(ctx context.Context, orders []*order.RentalOrder, now time.Time) int {
	if s.notifier == nil {
		return 0
	}

	delivered := 0
	for _, o := range orders {
		event := ports.OrderEvent{
			Type:       ports.EventRentalOverdue,
			OrderID:    o.ID(),
			CustomerID: o.CustomerID(),
			ToStatus:   o.Status().String(),
			Total:      o.Total().String(),
			EndDate:    o.Period().End(),
			OccurredAt: now,
		}
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "Failed to send overdue reminder",
				"order_id", o.ID().String(), "error", err)
			continue
		}
		delivered++
	}
	return delivered
}
