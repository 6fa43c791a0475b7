package events

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// DomainEvent is a fact about a state change that already happened. Events
// are published after the owning transaction commits; consumers must treat
// them as notifications, not commands.
type DomainEvent interface {
	// EventName returns the stable name consumers subscribe to.
	EventName() string
	// AggregateID returns the id of the aggregate the event belongs to.
	AggregateID() kernel.UUID
	// OccurredAt returns when the change happened.
	OccurredAt() time.Time
}

type baseEvent struct {
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func newBaseEvent(aggregateID kernel.UUID) baseEvent {
	return baseEvent{
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (e baseEvent) AggregateID() kernel.UUID {
	return e.aggregateID
}

func (e baseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// OrderCreated is published when a customer places a new order.
type OrderCreated struct {
	baseEvent

	CustomerID kernel.UUID
	TimeSlotID kernel.UUID
	TotalPrice kernel.Money
}

// NewOrderCreated builds an OrderCreated event from the order aggregate.
func NewOrderCreated(o *order.Order) OrderCreated {
	return OrderCreated{
		baseEvent:  newBaseEvent(o.ID()),
		CustomerID: o.CustomerID(),
		TimeSlotID: o.TimeSlotID(),
		TotalPrice: o.TotalPrice(),
	}
}

func (OrderCreated) EventName() string { return "order.created" }

// OrderConfirmed is published when an order's payment is confirmed and the
// order becomes eligible for driver assignment.
type OrderConfirmed struct {
	baseEvent

	CustomerID kernel.UUID
}

// NewOrderConfirmed builds an OrderConfirmed event from the order aggregate.
func NewOrderConfirmed(o *order.Order) OrderConfirmed {
	return OrderConfirmed{
		baseEvent:  newBaseEvent(o.ID()),
		CustomerID: o.CustomerID(),
	}
}

func (OrderConfirmed) EventName() string { return "order.confirmed" }

// DriverAssigned is published when a driver is matched to an order, whether
// directly or through an accepted application.
type DriverAssigned struct {
	baseEvent

	DriverID   kernel.UUID
	CustomerID kernel.UUID
}

// NewDriverAssigned builds a DriverAssigned event from the order aggregate.
func NewDriverAssigned(o *order.Order, driverID kernel.UUID) DriverAssigned {
	return DriverAssigned{
		baseEvent:  newBaseEvent(o.ID()),
		DriverID:   driverID,
		CustomerID: o.CustomerID(),
	}
}

func (DriverAssigned) EventName() string { return "order.driver_assigned" }

// OrderStatusChanged is published on every lifecycle transition of an order,
// carrying both the old and the new status.
type OrderStatusChanged struct {
	baseEvent

	CustomerID kernel.UUID
	From       order.Status
	To         order.Status
}

// NewOrderStatusChanged builds an OrderStatusChanged event.
func NewOrderStatusChanged(o *order.Order, from, to order.Status) OrderStatusChanged {
	return OrderStatusChanged{
		baseEvent:  newBaseEvent(o.ID()),
		CustomerID: o.CustomerID(),
		From:       from,
		To:         to,
	}
}

func (OrderStatusChanged) EventName() string { return "order.status_changed" }

// OrderCancelled is published when an order is cancelled before pickup.
type OrderCancelled struct {
	baseEvent

	CustomerID kernel.UUID
}

// NewOrderCancelled builds an OrderCancelled event from the order aggregate.
func NewOrderCancelled(o *order.Order) OrderCancelled {
	return OrderCancelled{
		baseEvent:  newBaseEvent(o.ID()),
		CustomerID: o.CustomerID(),
	}
}

func (OrderCancelled) EventName() string { return "order.cancelled" }

// PaymentCompleted is published when the gateway confirms a payment.
type PaymentCompleted struct {
	baseEvent

	OrderID        *kernel.UUID
	CustomerID     kernel.UUID
	Amount         kernel.Money
	TransactionRef string
}

// NewPaymentCompleted builds a PaymentCompleted event.
func NewPaymentCompleted(
	paymentID kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	transactionRef string,
) PaymentCompleted {
	return PaymentCompleted{
		baseEvent:      newBaseEvent(paymentID),
		OrderID:        orderID,
		CustomerID:     customerID,
		Amount:         amount,
		TransactionRef: transactionRef,
	}
}

func (PaymentCompleted) EventName() string { return "payment.completed" }

// PaymentFailed is published when the gateway reports a failed payment or a
// pending payment expires.
type PaymentFailed struct {
	baseEvent

	OrderID    *kernel.UUID
	CustomerID kernel.UUID
	Amount     kernel.Money
}

// NewPaymentFailed builds a PaymentFailed event.
func NewPaymentFailed(
	paymentID kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
) PaymentFailed {
	return PaymentFailed{
		baseEvent:  newBaseEvent(paymentID),
		OrderID:    orderID,
		CustomerID: customerID,
		Amount:     amount,
	}
}

func (PaymentFailed) EventName() string { return "payment.failed" }
