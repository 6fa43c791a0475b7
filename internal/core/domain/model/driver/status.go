package driver

import (
	"errors"
	"fmt"
)

// Status transition errors.
var (
	// ErrDriverNotAvailable is returned when work is assigned to a driver that
	// is not currently Available.
	ErrDriverNotAvailable = errors.New("driver is not available")

	// ErrInvalidDriverTransition is returned when a status change is not part
	// of the driver lifecycle.
	ErrInvalidDriverTransition = errors.New("invalid driver status transition")
)

// Status represents the working state of a driver.
//
// Approval lifecycle:
//
//	PendingApproval ──┬──> Available (approved)
//	                  └──> Rejected
//
// Working lifecycle:
//
//	Available <──> Offline
//	Available ──> OnRoute ──> Busy ──> Available
//
// Revoked can be reached from any non-terminal status and, together with
// Rejected, ends the driver's participation in the marketplace.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingApproval is the initial status of a newly registered driver
	// awaiting an admin decision.
	PendingApproval

	// Available means the driver is online and can take assignments.
	Available

	// OnRoute means the driver is heading to a pickup.
	OnRoute

	// Busy means the driver is handling an active order past pickup.
	Busy

	// Offline means the driver is registered but not currently working.
	Offline

	// Rejected means the registration was declined. Terminal.
	Rejected

	// Revoked means the driver's access was withdrawn by an admin. Terminal.
	Revoked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		PendingApproval: "PendingApproval",
		Available:       "Available",
		OnRoute:         "OnRoute",
		Busy:            "Busy",
		Offline:         "Offline",
		Rejected:        "Rejected",
		Revoked:         "Revoked",
	}
}

// Validate checks if the Status value is a known driver status.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidDriverTransition, s)
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

// IsTerminal reports whether the driver can no longer participate.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Revoked
}

// IsWorking reports whether the driver currently holds an active order.
func (s Status) IsWorking() bool {
	return s == OnRoute || s == Busy
}
