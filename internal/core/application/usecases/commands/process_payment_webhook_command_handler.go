package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/ports"
)

// ErrWebhookSignatureInvalid is returned when the gateway signature does not
// match the callback payload. The callback must be discarded without touching
// any payment state.
var ErrWebhookSignatureInvalid = errors.New("webhook signature verification failed")

// ProcessPaymentWebhookCommandHandler settles a payment from a gateway
// callback.
//
// The order of operations is fixed: the signature is verified before anything
// else, then the idempotency gate — a payment that already left Pending makes
// the whole callback a successful no-op, which is what makes gateway
// redeliveries safe. Only then does the payment settle and the linked order
// move: Confirmed on success, PaymentFailed on failure.
type ProcessPaymentWebhookCommandHandler struct {
	uowFactory PaymentUoWFactory
	verifier   ports.SignatureVerifier
	publisher  ports.EventPublisher
}

// NewProcessPaymentWebhookCommandHandler creates a handler for gateway
// callbacks.
func NewProcessPaymentWebhookCommandHandler(
	uowFactory PaymentUoWFactory,
	verifier ports.SignatureVerifier,
	publisher ports.EventPublisher,
) ProcessPaymentWebhookCommandHandler {
	return ProcessPaymentWebhookCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		publisher:  publisher,
	}
}

// Handle processes the gateway callback.
//
// Returns ErrWebhookSignatureInvalid on a bad signature and
// errs.ErrObjectNotFound when the referenced payment does not exist.
// A callback for an already-settled payment returns nil without changes.
func (h ProcessPaymentWebhookCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentWebhookCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Signature first: nothing below runs for an unauthenticated payload.
	if err := h.verifier.Verify(cmd.Payload(), cmd.Signature()); err != nil {
		return fmt.Errorf("%w: %w", ErrWebhookSignatureInvalid, err)
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

	settledPayment, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	// Idempotency gate: redelivered callbacks are acknowledged, not reapplied.
	if !settledPayment.IsPending() {
		return nil
	}

	if cmd.Success() {
		err = settledPayment.Complete(cmd.TransactionRef())
	} else {
		err = settledPayment.Fail()
	}
	if err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, settledPayment); err != nil {
		return err
	}

	settledOrder, err := h.settleOrder(ctx, orderRepo, settledPayment, cmd.Success())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishOutcome(ctx, settledPayment, settledOrder, cmd.Success())
	return nil
}

// settleOrder moves the linked order according to the payment outcome.
// Wallet top-ups have no linked order and skip this step.
func (h ProcessPaymentWebhookCommandHandler) settleOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	settledPayment *payment.Payment,
	success bool,
) (*order.Order, error) {
	if settledPayment.OrderID() == nil {
		return nil, nil
	}

	settledOrder, err := orderRepo.Get(ctx, *settledPayment.OrderID())
	if err != nil {
		return nil, err
	}

	if success {
		err = settledOrder.Confirm()
	} else {
		err = settledOrder.FailPayment()
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, settledOrder); err != nil {
		return nil, err
	}

	return settledOrder, nil
}

func (h ProcessPaymentWebhookCommandHandler) publishOutcome(
	ctx context.Context,
	settledPayment *payment.Payment,
	settledOrder *order.Order,
	success bool,
) {
	var evts []events.DomainEvent
	if success {
		evts = append(evts, events.NewPaymentCompleted(
			settledPayment.ID(),
			settledPayment.OrderID(),
			settledPayment.CustomerID(),
			settledPayment.Amount(),
			settledPayment.TransactionRef(),
		))
		if settledOrder != nil {
			evts = append(evts, events.NewOrderConfirmed(settledOrder))
		}
	} else {
		evts = append(evts, events.NewPaymentFailed(
			settledPayment.ID(),
			settledPayment.OrderID(),
			settledPayment.CustomerID(),
			settledPayment.Amount(),
		))
	}

	if err := h.publisher.Publish(ctx, evts...); err != nil {
		slog.Warn("failed to publish payment events",
			"paymentID", settledPayment.ID().String(), "error", err)
	}
}
