package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rental/internal/core/ports"
)

const deliveryTimeout = 15 * time.Second

// Async queues events and delivers them from a single background worker, so a slow
// mail or broker round trip never holds up the command that caused the event.
// Events are dropped with a warning when the queue is full.
type Async struct {
	next   ports.Notifier
	queue  chan queued
	logger *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

type queued struct {
	ctx   context.Context
	event ports.OrderEvent
}

func NewAsync(next ports.Notifier, buffer int, logger *slog.Logger) *Async {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Async{
		next:   next,
		queue:  make(chan queued, buffer),
		logger: logger.With("component", "async_notifier"),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

// Notify enqueues the event and always returns nil.
func (a *Async) Notify(ctx context.Context, event ports.OrderEvent) error {
	select {
	case a.queue <- queued{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		a.logger.WarnContext(ctx, "Notification queue is full, dropping event",
			"order_id", event.OrderID.String(), "event", event.Type)
	}
	return nil
}

// Close stops accepting events and waits until the queue is drained or ctx ends.
// Notify must not be called after Close.
func (a *Async) Close(ctx context.Context) error {
	a.closeOnce.Do(func() { close(a.queue) })

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Async) run() {
	defer close(a.done)

	for q := range a.queue {
		ctx, cancel := context.WithTimeout(q.ctx, deliveryTimeout)
		if err := a.next.Notify(ctx, q.event); err != nil {
			a.logger.WarnContext(ctx, "Failed to deliver notification",
				"order_id", q.event.OrderID.String(), "event", q.event.Type, "error", err)
		}
		cancel()
	}
}
