// Package notify combines notifiers and moves delivery off the request path.
package notify

import (
	"context"
	"errors"

	"rental/internal/core/ports"
)

// Fanout delivers every event to all notifiers and joins their errors.
// One failing channel does not stop the others.
type Fanout []ports.Notifier

func (f Fanout) Notify(ctx context.Context, event ports.OrderEvent) error {
	var failures []error
	for _, n := range f {
		if err := n.Notify(ctx, event); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
