package driver

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleIsRequired is returned when attempting to create a driver without vehicle info.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a pickup-and-delivery driver in the marketplace.
// It is an aggregate root that manages driver identity, approval and the
// working lifecycle around order assignments.
//
// Business rules:
//   - A driver must have a valid UUID, non-empty name and phone
//   - New drivers start in PendingApproval and cannot take work until approved
//   - Only Available drivers can be assigned an order or apply for one
//   - Assignment moves the driver to OnRoute; delivering the order releases
//     the driver back to Available
//   - Rejected and Revoked are terminal
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// phone is the driver's contact phone number
	phone string
	// vehicle describes what the driver delivers with
	vehicle string
	// location is the driver's last reported position
	location kernel.Location
	// rating is the driver's current customer rating, 0 to 5
	rating float64
	// status is the current state in the driver lifecycle
	status Status
	// version is the optimistic concurrency token
	version int64
	// isConstructed ensures the driver was created via NewDriver
	isConstructed bool
}

// NewDriver registers a new driver in PendingApproval status.
// All parameters must be valid for the driver to be created.
func NewDriver(id kernel.UUID, name, phone, vehicle string, location kernel.Location) (*Driver, error) {
	driver := &Driver{
		status:        PendingApproval,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicle(vehicle),
		driver.setLocation(location),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// preserving its status and concurrency version.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicle string,
	location kernel.Location,
	rating float64,
	status Status,
	version int64,
) (*Driver, error) {
	driver := &Driver{
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicle(vehicle),
		driver.setLocation(location),
		driver.setRating(rating),
		driver.setStatus(status),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Vehicle returns the driver's vehicle description.
func (d *Driver) Vehicle() string {
	return d.vehicle
}

// Location returns the driver's last reported position.
func (d *Driver) Location() kernel.Location {
	return d.location
}

// Rating returns the driver's current customer rating.
func (d *Driver) Rating() float64 {
	return d.rating
}

// Status returns the current status of the driver.
func (d *Driver) Status() Status {
	return d.status
}

// Version returns the optimistic concurrency token.
func (d *Driver) Version() int64 {
	return d.version
}

// CanTakeOrder reports whether the driver may be assigned an order or apply
// for one. Only approved, Available drivers qualify.
func (d *Driver) CanTakeOrder() bool {
	return d.status == Available
}

// Approve moves a PendingApproval driver to Available.
func (d *Driver) Approve() error {
	if d.status != PendingApproval {
		return fmt.Errorf("%w: cannot approve from %s", ErrInvalidDriverTransition, d.status)
	}

	d.status = Available
	return nil
}

// Reject declines a PendingApproval driver's registration. Terminal.
func (d *Driver) Reject() error {
	if d.status != PendingApproval {
		return fmt.Errorf("%w: cannot reject from %s", ErrInvalidDriverTransition, d.status)
	}

	d.status = Rejected
	return nil
}

// Revoke withdraws the driver's marketplace access. Terminal.
// A driver holding an active order cannot be revoked mid-delivery.
func (d *Driver) Revoke() error {
	if d.status.IsTerminal() {
		return fmt.Errorf("%w: cannot revoke from %s", ErrInvalidDriverTransition, d.status)
	}
	if d.status.IsWorking() {
		return fmt.Errorf("%w: driver has an active order", ErrInvalidDriverTransition)
	}

	d.status = Revoked
	return nil
}

// Assign marks the driver as OnRoute to a pickup.
// Only Available drivers can be assigned.
func (d *Driver) Assign() error {
	if d.status != Available {
		return fmt.Errorf("%w: driver is %s", ErrDriverNotAvailable, d.status)
	}

	d.status = OnRoute
	return nil
}

// StartProcessing marks the driver Busy once items are picked up.
func (d *Driver) StartProcessing() error {
	if d.status != OnRoute {
		return fmt.Errorf("%w: cannot start processing from %s", ErrInvalidDriverTransition, d.status)
	}

	d.status = Busy
	return nil
}

// Release returns a working driver to Available after the order is
// delivered or cancelled.
func (d *Driver) Release() error {
	if !d.status.IsWorking() {
		return fmt.Errorf("%w: cannot release from %s", ErrInvalidDriverTransition, d.status)
	}

	d.status = Available
	return nil
}

// GoOffline takes an Available driver off rotation.
func (d *Driver) GoOffline() error {
	if d.status != Available {
		return fmt.Errorf("%w: cannot go offline from %s", ErrInvalidDriverTransition, d.status)
	}

	d.status = Offline
	return nil
}

// GoOnline brings an Offline driver back into rotation.
func (d *Driver) GoOnline() error {
	if d.status != Offline {
		return fmt.Errorf("%w: cannot go online from %s", ErrInvalidDriverTransition, d.status)
	}

	d.status = Available
	return nil
}

// MoveTo updates the driver's last reported position.
func (d *Driver) MoveTo(location kernel.Location) error {
	return d.setLocation(location)
}

// Rate records the driver's updated customer rating.
func (d *Driver) Rate(rating float64) error {
	return d.setRating(rating)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicle(vehicle string) error {
	if vehicle == "" {
		return ErrVehicleIsRequired
	}
	d.vehicle = vehicle
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	d.rating = rating
	return nil
}

func (d *Driver) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
