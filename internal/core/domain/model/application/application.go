package application

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// RejectionCooldown is how long a rejected driver must wait before applying
// to the same order again.
const RejectionCooldown = 30 * 24 * time.Hour

// Domain errors for driver applications.
var (
	// ErrApplicationIsNotConstructed is returned when using an improperly
	// initialized Application.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")

	// ErrApplicationAlreadyDecided is returned when accepting or rejecting an
	// application that already left the Applied status.
	ErrApplicationAlreadyDecided = errors.New("application is already decided")

	// ErrRejectionCooldownActive is returned when a driver re-applies to an
	// order before the rejection cooldown has passed.
	ErrRejectionCooldownActive = errors.New("driver was recently rejected for this order")
)

// Status represents the decision state of a driver's application.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Applied is the initial status while the application awaits a decision.
	Applied

	// Accepted means the application won and the driver got the order.
	Accepted

	// Rejected means the application lost, either explicitly or because a
	// competing application was accepted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Applied:       "Applied",
		Accepted:      "Accepted",
		Rejected:      "Rejected",
	}
}

// Validate checks if the Status value is a known application status.
func (s Status) Validate() error {
	if s != Applied && s != Accepted && s != Rejected {
		return fmt.Errorf("%d is not a valid application status", s)
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

// Application is a driver's bid to handle a specific order. Several drivers
// can apply to the same order; accepting one application rejects all the
// competing ones. A rejected driver cannot re-apply to the same order until
// RejectionCooldown has passed since the rejection.
type Application struct {
	// id uniquely identifies the application
	id kernel.UUID
	// orderID is the order being applied for
	orderID kernel.UUID
	// driverID is the applying driver
	driverID kernel.UUID
	// status is the decision state of the application
	status Status
	// appliedAt is when the driver submitted the application
	appliedAt time.Time
	// decidedAt is when the application was accepted or rejected
	decidedAt *time.Time
	// version is the optimistic concurrency token
	version int64
	// isConstructed ensures the application was created via NewApplication
	isConstructed bool
}

// NewApplication creates a pending application of a driver for an order.
func NewApplication(id, orderID, driverID kernel.UUID) (*Application, error) {
	app := &Application{
		status:        Applied,
		appliedAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		app.setID(id),
		app.setOrderID(orderID),
		app.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return app, nil
}

// RestoreApplication reconstructs an Application from persistent storage.
func RestoreApplication(
	id, orderID, driverID kernel.UUID,
	status Status,
	appliedAt time.Time,
	decidedAt *time.Time,
	version int64,
) (*Application, error) {
	app := &Application{
		appliedAt:     appliedAt,
		decidedAt:     decidedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		app.setID(id),
		app.setOrderID(orderID),
		app.setDriverID(driverID),
		app.setStatus(status),
	); err != nil {
		return nil, err
	}

	return app, nil
}

// Validate ensures the Application instance was properly constructed.
func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order being applied for.
func (a *Application) OrderID() kernel.UUID {
	return a.orderID
}

// DriverID returns the applying driver.
func (a *Application) DriverID() kernel.UUID {
	return a.driverID
}

// Status returns the decision state of the application.
func (a *Application) Status() Status {
	return a.status
}

// AppliedAt returns when the driver submitted the application.
func (a *Application) AppliedAt() time.Time {
	return a.appliedAt
}

// DecidedAt returns when the application was decided, or nil while pending.
func (a *Application) DecidedAt() *time.Time {
	return a.decidedAt
}

// Version returns the optimistic concurrency token.
func (a *Application) Version() int64 {
	return a.version
}

// IsPending reports whether the application still awaits a decision.
func (a *Application) IsPending() bool {
	return a.status == Applied
}

// Accept marks the application as the winning one.
// Only valid while Applied.
func (a *Application) Accept() error {
	if a.status != Applied {
		return fmt.Errorf("%w: %s", ErrApplicationAlreadyDecided, a.status)
	}

	now := time.Now().UTC()
	a.status = Accepted
	a.decidedAt = &now
	return nil
}

// Reject marks the application as lost, either by an explicit decision or
// because a competing application was accepted.
// Only valid while Applied.
func (a *Application) Reject() error {
	if a.status != Applied {
		return fmt.Errorf("%w: %s", ErrApplicationAlreadyDecided, a.status)
	}

	now := time.Now().UTC()
	a.status = Rejected
	a.decidedAt = &now
	return nil
}

// BlocksReapplyAt reports whether this application blocks the same driver
// from re-applying to the same order at the given moment. Only rejected
// applications block, and only until RejectionCooldown has passed since the
// rejection.
func (a *Application) BlocksReapplyAt(now time.Time) bool {
	if a.status != Rejected || a.decidedAt == nil {
		return a.status == Applied || a.status == Accepted
	}

	return now.Sub(*a.decidedAt) < RejectionCooldown
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Application) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	a.driverID = driverID
	return nil
}

func (a *Application) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
