package payment

import (
	"errors"
	"fmt"
)

// ErrPaymentAlreadyFinal is returned when a transition is attempted on a
// payment that already left the Pending status. Completed and Failed are
// terminal; webhook redeliveries must treat them as no-ops.
var ErrPaymentAlreadyFinal = errors.New("payment is in a final state")

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──┬──> Completed
//	          └──> Failed
//
// Once a payment leaves Pending it is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status while the gateway outcome is unknown.
	Pending

	// Completed indicates the gateway confirmed the payment. Terminal.
	Completed

	// Failed indicates the gateway reported an error or denial. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// Validate checks if the Status value is a known payment status.
func (s Status) Validate() error {
	if s != Pending && s != Completed && s != Failed {
		return fmt.Errorf("%d is not a valid payment status", s)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Complete transitions the status to Completed.
// Only valid from Pending.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot complete from %s", ErrPaymentAlreadyFinal, s)
	}
	return Completed, nil
}

// Fail transitions the status to Failed.
// Only valid from Pending.
func (s Status) Fail() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot fail from %s", ErrPaymentAlreadyFinal, s)
	}
	return Failed, nil
}
