package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle.
//
// Delivering an order also releases its driver back to Available within the
// same transaction, so a driver never stays stuck on a finished order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
//
// Returns errs.ErrObjectNotFound when the order does not exist,
// order.ErrOrderInFinalState when the order is already terminal and
// order.ErrInvalidStatusTransition when the move is not on the lifecycle
// graph.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	updatedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := updatedOrder.Status()
	if err = updatedOrder.UpdateStatus(cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, updatedOrder); err != nil {
		return err
	}

	// Delivery frees the driver for the next order.
	if cmd.Next() == order.Delivered && updatedOrder.Driver() != nil {
		assignedDriver, err := driverRepo.Get(ctx, *updatedOrder.Driver())
		if err != nil {
			return err
		}

		if err = assignedDriver.Release(); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, assignedDriver); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, events.NewOrderStatusChanged(updatedOrder, from, cmd.Next())); err != nil {
		slog.Warn("failed to publish order status changed event",
			"orderID", updatedOrder.ID().String(), "error", err)
	}

	return nil
}
