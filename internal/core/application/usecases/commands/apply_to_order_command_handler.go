package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/driver"
)

var (
	// ErrDriverAlreadyApplied is returned when the driver already has a
	// pending or accepted application for the order.
	ErrDriverAlreadyApplied = errors.New("driver already applied to this order")
)

// ApplyToOrderCommandHandler handles a driver's application for an order.
//
// An application is only accepted into the pool when the order is still
// assignable, the driver can take work, and the driver is not blocked: a
// pending or accepted application for the same order rejects the attempt
// outright, and a rejection within the cooldown window keeps the driver out
// until the cooldown passes.
type ApplyToOrderCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewApplyToOrderCommandHandler creates a handler for driver applications.
func NewApplyToOrderCommandHandler(uowFactory ApplicationUoWFactory) ApplyToOrderCommandHandler {
	return ApplyToOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the application command.
//
// Returns errs.ErrObjectNotFound when the order or driver does not exist,
// order.ErrInvalidStatusTransition when the order is not open for
// applications, driver.ErrDriverNotAvailable when the driver cannot take
// work, ErrDriverAlreadyApplied on a duplicate application and
// application.ErrRejectionCooldownActive during the cooldown.
func (h ApplyToOrderCommandHandler) Handle(ctx context.Context, cmd ApplyToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	applicationRepo := uow.ApplicationRepository()

	appliedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = appliedOrder.Status().ValidateAssign(); err != nil {
		return err
	}

	applyingDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if !applyingDriver.CanTakeOrder() {
		return fmt.Errorf("%w: driver is %s", driver.ErrDriverNotAvailable, applyingDriver.Status())
	}

	previous, err := applicationRepo.GetAllByOrderAndDriver(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, prev := range previous {
		switch {
		case prev.Status() != application.Rejected:
			return ErrDriverAlreadyApplied
		case prev.BlocksReapplyAt(now):
			return fmt.Errorf("%w: order %s", application.ErrRejectionCooldownActive, cmd.OrderID())
		}
	}

	newApplication, err := application.NewApplication(cmd.ApplicationID(), cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	if err = applicationRepo.Add(ctx, newApplication); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
