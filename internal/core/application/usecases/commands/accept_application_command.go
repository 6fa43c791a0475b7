package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAcceptApplicationCommandIsNotConstructed = errors.New(
	"AcceptApplicationCommand must be created via NewAcceptApplicationCommand constructor",
)

// AcceptApplicationCommand represents the decision to give an order to one of
// the drivers who applied for it. Every competing application is rejected in
// the same transaction.
type AcceptApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptApplicationCommand creates a command to accept a driver application.
func NewAcceptApplicationCommand(applicationID kernel.UUID) (AcceptApplicationCommand, error) {
	cmd := AcceptApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setApplicationID(applicationID); err != nil {
		return AcceptApplicationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptApplicationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application to accept.
func (c AcceptApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c *AcceptApplicationCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}
	c.applicationID = applicationID
	return nil
}
