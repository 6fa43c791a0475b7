package commands

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/ports"
)

// FailStalePaymentsCommandHandler expires pending payments the gateway never
// settled. Each stale payment is failed and its linked order moves to
// PaymentFailed, freeing the order's seat in its time slot.
//
// One unsettleable payment does not abort the sweep: its error is logged and
// the remaining payments are still processed.
type FailStalePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	publisher  ports.EventPublisher
	pendingTTL time.Duration
}

// NewFailStalePaymentsCommandHandler creates a handler for the payment
// expiry sweep. pendingTTL is how long a payment may stay Pending before it
// is considered abandoned.
func NewFailStalePaymentsCommandHandler(
	uowFactory PaymentUoWFactory,
	publisher ports.EventPublisher,
	pendingTTL time.Duration,
) FailStalePaymentsCommandHandler {
	return FailStalePaymentsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pendingTTL: pendingTTL,
	}
}

// Handle processes the expiry sweep.
func (h FailStalePaymentsCommandHandler) Handle(ctx context.Context, cmd FailStalePaymentsCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	orderRepo := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-h.pendingTTL)
	stale, err := paymentRepo.GetAllStalePending(ctx, cutoff)
	if err != nil {
		return err
	}

	var evts []events.DomainEvent
	for _, stalePayment := range stale {
		if err = stalePayment.Fail(); err != nil {
			slog.Warn("skipping unsettleable stale payment",
				"paymentID", stalePayment.ID().String(), "error", err)
			continue
		}

		if err = paymentRepo.Update(ctx, stalePayment); err != nil {
			return err
		}

		if stalePayment.OrderID() != nil {
			staleOrder, err := orderRepo.Get(ctx, *stalePayment.OrderID())
			if err != nil {
				return err
			}

			if err = staleOrder.FailPayment(); err != nil {
				slog.Warn("stale payment order not in failable state",
					"orderID", staleOrder.ID().String(), "error", err)
			} else if err = orderRepo.Update(ctx, staleOrder); err != nil {
				return err
			}
		}

		evts = append(evts, events.NewPaymentFailed(
			stalePayment.ID(),
			stalePayment.OrderID(),
			stalePayment.CustomerID(),
			stalePayment.Amount(),
		))
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(evts) > 0 {
		if err = h.publisher.Publish(ctx, evts...); err != nil {
			slog.Warn("failed to publish payment expiry events", "error", err)
		}
	}

	return nil
}
