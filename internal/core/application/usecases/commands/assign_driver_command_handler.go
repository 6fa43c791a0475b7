package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/ports"
)

// AssignDriverCommandHandler handles direct driver assignment by an admin.
//
// Both sides of the match are validated inside one transaction: the order
// must be Confirmed and unassigned, the driver must be Available. Two admins
// assigning the same order concurrently are resolved by the optimistic
// version check on the order update — the loser gets
// errs.ErrVersionIsInvalid and can retry against the new state.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignDriverCommandHandler creates a handler for direct assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.EventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
//
// Returns errs.ErrObjectNotFound when the order or driver does not exist,
// order.ErrInvalidStatusTransition when the order is not assignable and
// driver.ErrDriverNotAvailable when the driver cannot take work.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignedDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = assignedOrder.AssignDriver(assignedDriver.ID()); err != nil {
		return err
	}

	if err = assignedDriver.Assign(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, events.NewDriverAssigned(assignedOrder, assignedDriver.ID())); err != nil {
		slog.Warn("failed to publish driver assigned event",
			"orderID", assignedOrder.ID().String(), "error", err)
	}

	return nil
}
