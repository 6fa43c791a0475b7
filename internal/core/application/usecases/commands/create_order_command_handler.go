package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// Placing an order is the capacity-sensitive operation of the marketplace:
// the handler locks the time slot row, counts the active orders already
// booked into the slot for the scheduled date, and only then inserts the new
// order. Concurrent bookings into the same slot serialize on the row lock, so
// the slot capacity can never be exceeded by a race between the check and the
// insert. A pending payment is created in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	publisher  ports.EventPublisher
	gateway    string
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The gateway name is recorded on the pending payment created for the order.
func NewCreateOrderCommandHandler(
	uowFactory BookingUoWFactory,
	publisher ports.EventPublisher,
	gateway string,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		gateway:    gateway,
	}
}

// Handle processes the order placement command.
//
// Returns timeslot.ErrTimeSlotFull when the slot has no free capacity on the
// scheduled date and errs.ErrObjectNotFound when the slot does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	slotRepo := uow.TimeSlotRepository()
	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	// Row lock: held until commit, serializing concurrent bookings.
	slot, err := slotRepo.GetForUpdate(ctx, cmd.TimeSlotID())
	if err != nil {
		return err
	}

	activeOrders, err := orderRepo.CountActiveForSlot(ctx, slot.ID(), cmd.ScheduledDate())
	if err != nil {
		return err
	}

	if err = slot.CheckCapacity(activeOrders); err != nil {
		return err
	}

	items, err := h.buildItems(cmd)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		slot.ID(),
		cmd.ScheduledDate(),
		cmd.PickupLocation(), cmd.PickupAddress(),
		cmd.DeliveryLocation(), cmd.DeliveryAddress(),
		items,
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	orderID := newOrder.ID()
	newPayment, err := payment.NewPayment(
		kernel.NewUUID(),
		newOrder.CustomerID(),
		&orderID,
		newOrder.TotalPrice(),
		newOrder.PaymentMethod(),
		h.gateway,
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, newPayment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, events.NewOrderCreated(newOrder)); err != nil {
		slog.Warn("failed to publish order created event",
			"orderID", newOrder.ID().String(), "error", err)
	}

	return nil
}

func (h CreateOrderCommandHandler) buildItems(cmd CreateOrderCommand) ([]order.Item, error) {
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, data := range cmd.Items() {
		unitPrice, err := kernel.NewMoney(data.UnitPrice, cmd.Currency())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(data.ServiceID, data.ServiceName, data.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
