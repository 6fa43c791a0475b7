package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order before pickup.
//
// Cancelling frees the order's seat in its time slot implicitly: terminal
// orders are excluded from the slot capacity count.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
//
// Returns errs.ErrObjectNotFound when the order does not exist,
// order.ErrOrderInFinalState when it is already terminal and
// order.ErrInvalidStatusTransition when the order is past pickup.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, events.NewOrderCancelled(cancelledOrder)); err != nil {
		slog.Warn("failed to publish order cancelled event",
			"orderID", cancelledOrder.ID().String(), "error", err)
	}

	return nil
}
