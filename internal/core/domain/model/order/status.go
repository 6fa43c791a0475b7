package order

import (
	"errors"
	"fmt"
)

// Status transition errors.
var (
	// ErrOrderInFinalState is returned when any transition is attempted from a
	// terminal status (Delivered, Cancelled or PaymentFailed). This invariant is
	// enforced inside the status machine itself, not only at the service layer.
	ErrOrderInFinalState = errors.New("order is in a final state")

	// ErrInvalidStatusTransition is returned when a transition is not part of
	// the order lifecycle graph.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Requested ──> Confirmed ──> (DriverAssigned) ──> PickedUp ──> InCleaning ──> OutForDelivery ──> Delivered
//	    │             │
//	    │             └────────> Cancelled
//	    ├────────────────────> Cancelled
//	    └────────────────────> PaymentFailed
//
// Delivered, Cancelled and PaymentFailed are terminal: no transition out of
// them is ever allowed. Forward progression is monotonic — no skipping and no
// backward transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status assigned at order creation, before
	// payment has been confirmed.
	Requested

	// Confirmed indicates payment succeeded (or an admin confirmed the order);
	// the order is now eligible for driver assignment.
	Confirmed

	// DriverAssigned indicates a driver has been matched to the order.
	DriverAssigned

	// PickedUp indicates the driver collected the items from the customer.
	PickedUp

	// InCleaning indicates the items are being processed at the facility.
	InCleaning

	// OutForDelivery indicates the cleaned items are on the way back.
	OutForDelivery

	// Delivered indicates the order was completed. Terminal.
	Delivered

	// Cancelled indicates the customer or an admin cancelled the order before
	// pickup. Terminal.
	Cancelled

	// PaymentFailed indicates the payment gateway reported a failure for the
	// order's payment. Terminal.
	PaymentFailed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Requested:      "Requested",
		Confirmed:      "Confirmed",
		DriverAssigned: "DriverAssigned",
		PickedUp:       "PickedUp",
		InCleaning:     "InCleaning",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
		PaymentFailed:  "PaymentFailed",
	}
}

// getStatusTransitions returns the directed transition graph of the order
// lifecycle. A status maps to the set of statuses reachable from it; terminal
// statuses map to an empty set.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Requested:      {Confirmed, Cancelled, PaymentFailed},
		Confirmed:      {DriverAssigned, PickedUp, Cancelled},
		DriverAssigned: {PickedUp},
		PickedUp:       {InCleaning},
		InCleaning:     {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
		PaymentFailed:  {},
	}
}

// Validate checks if the Status value is a known lifecycle status.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatusTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final: Delivered, Cancelled or
// PaymentFailed. No transition out of a terminal status is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == PaymentFailed
}

// CanTransitionTo reports whether next is directly reachable from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition along the lifecycle graph.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, ErrOrderInFinalState) when s is terminal — always, regardless of next
//   - (0, ErrInvalidStatusTransition) when the edge s -> next does not exist
func (s Status) TransitionTo(next Status) (Status, error) {
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot transition from %s", ErrOrderInFinalState, s)
	}

	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}

// ValidateAssign checks if the status allows driver assignment.
// Only Confirmed orders may have a driver assigned.
func (s Status) ValidateAssign() error {
	if s.IsTerminal() {
		return fmt.Errorf("%w: cannot assign driver in %s", ErrOrderInFinalState, s)
	}
	if s != Confirmed {
		return fmt.Errorf("%w: %s is not a valid status to assign a driver", ErrInvalidStatusTransition, s)
	}
	return nil
}

// ValidateCancel checks if the status allows cancellation.
// Orders can only be cancelled before physical pickup, i.e. while Requested
// or Confirmed.
func (s Status) ValidateCancel() error {
	if s.IsTerminal() {
		return fmt.Errorf("%w: cannot cancel in %s", ErrOrderInFinalState, s)
	}
	if s != Requested && s != Confirmed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, Cancelled)
	}
	return nil
}
