package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrApplyToOrderCommandIsNotConstructed = errors.New(
	"ApplyToOrderCommand must be created via NewApplyToOrderCommand constructor",
)

// ApplyToOrderCommand represents a driver's bid to handle an order in the
// competitive assignment flow.
type ApplyToOrderCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	orderID       kernel.UUID
	driverID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyToOrderCommand creates a command for a driver to apply for an order.
func NewApplyToOrderCommand(applicationID, orderID, driverID kernel.UUID) (ApplyToOrderCommand, error) {
	cmd := ApplyToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return ApplyToOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyToOrderCommand) Validate() error {
	return c.guard.Validate(ErrApplyToOrderCommandIsNotConstructed)
}

// ApplicationID returns the unique identifier for the new application.
func (c ApplyToOrderCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// OrderID returns the order being applied for.
func (c ApplyToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the applying driver.
func (c ApplyToOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ApplyToOrderCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}
	c.applicationID = applicationID
	return nil
}

func (c *ApplyToOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApplyToOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
