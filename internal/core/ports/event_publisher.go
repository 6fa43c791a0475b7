package ports

import (
	"context"

	"laundry/internal/core/domain/events"
)

// EventPublisher delivers domain events to interested consumers.
// Handlers call Publish after their transaction commits; implementations must
// never let a delivery failure propagate back into the command, only log it.
type EventPublisher interface {
	// Publish hands the events over for asynchronous delivery.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// EventHandler consumes a single domain event.
type EventHandler interface {
	// Handle processes the event. Errors are logged by the dispatcher and
	// never retried.
	Handle(ctx context.Context, event events.DomainEvent) error
}
