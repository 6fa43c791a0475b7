// Package eventbus provides an in-process implementation of the event
// publisher port: events are queued after commit and dispatched to
// subscribers on a background goroutine.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/ports"
)

// ErrBusClosed is returned when publishing after Close.
var ErrBusClosed = errors.New("event bus is closed")

// ErrQueueFull is returned when the dispatch queue cannot accept more events.
// Publishing never blocks the committing command.
var ErrQueueFull = errors.New("event queue is full")

// HandlerFunc adapts a plain function to the EventHandler port.
type HandlerFunc func(ctx context.Context, event events.DomainEvent) error

// Handle calls the wrapped function.
func (f HandlerFunc) Handle(ctx context.Context, event events.DomainEvent) error {
	return f(ctx, event)
}

// InProcessEventBus dispatches domain events to subscribers registered by
// event name. Dispatch is asynchronous: Publish enqueues and returns, a
// single background goroutine drains the queue in order. Handler errors are
// logged and never retried.
type InProcessEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	queue    chan events.DomainEvent
	logger   *slog.Logger

	closed  bool
	drained sync.WaitGroup
}

// NewInProcessEventBus creates a bus with the given queue capacity and
// starts its dispatcher goroutine.
func NewInProcessEventBus(logger *slog.Logger, queueSize int) *InProcessEventBus {
	bus := &InProcessEventBus{
		handlers: make(map[string][]ports.EventHandler),
		queue:    make(chan events.DomainEvent, queueSize),
		logger:   logger.With("component", "event_bus"),
	}

	bus.drained.Add(1)
	go bus.dispatch()

	return bus
}

// Subscribe registers a handler for an event name. Subscriptions are
// expected at composition time, before events start flowing.
func (b *InProcessEventBus) Subscribe(eventName string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish enqueues the events for asynchronous delivery.
// Returns ErrQueueFull instead of blocking when the queue is saturated and
// ErrBusClosed after Close.
func (b *InProcessEventBus) Publish(_ context.Context, evts ...events.DomainEvent) error {
	// The read lock keeps Close from closing the queue mid-send.
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for _, event := range evts {
		select {
		case b.queue <- event:
		default:
			return ErrQueueFull
		}
	}
	return nil
}

// Close stops accepting events and waits for the queue to drain.
func (b *InProcessEventBus) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()

	b.drained.Wait()
}

func (b *InProcessEventBus) dispatch() {
	defer b.drained.Done()

	for event := range b.queue {
		b.mu.RLock()
		subscribers := b.handlers[event.EventName()]
		b.mu.RUnlock()

		for _, handler := range subscribers {
			if err := handler.Handle(context.Background(), event); err != nil {
				b.logger.Warn("event handler failed",
					"event", event.EventName(),
					"aggregateID", event.AggregateID().String(),
					"error", err)
			}
		}
	}
}
