package commands

import (
	"context"
	"fmt"
	"log/slog"

	"laundry/internal/core/domain/events"
	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/ports"
)

// AcceptApplicationCommandHandler resolves a competitive assignment: one
// application wins, the driver gets the order, and every other pending
// application for the same order is auto-rejected in the same transaction.
//
// Notifications to the winning and the rejected drivers go out after the
// commit; a notification failure is logged and never fails the acceptance.
type AcceptApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	publisher  ports.EventPublisher
	notifier   ports.Notifier
}

// NewAcceptApplicationCommandHandler creates a handler for accepting
// driver applications.
func NewAcceptApplicationCommandHandler(
	uowFactory ApplicationUoWFactory,
	publisher ports.EventPublisher,
	notifier ports.Notifier,
) AcceptApplicationCommandHandler {
	return AcceptApplicationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
//
// Returns errs.ErrObjectNotFound when the application does not exist,
// application.ErrApplicationAlreadyDecided when it was already decided,
// order.ErrInvalidStatusTransition when the order is no longer assignable
// and driver.ErrDriverNotAvailable when the winning driver cannot take work.
func (h AcceptApplicationCommandHandler) Handle(ctx context.Context, cmd AcceptApplicationCommand) error {
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

	applicationRepo := uow.ApplicationRepository()
	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	winner, err := applicationRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	wonOrder, err := orderRepo.Get(ctx, winner.OrderID())
	if err != nil {
		return err
	}

	winningDriver, err := driverRepo.Get(ctx, winner.DriverID())
	if err != nil {
		return err
	}

	if err = winner.Accept(); err != nil {
		return err
	}

	if err = wonOrder.AssignDriver(winningDriver.ID()); err != nil {
		return err
	}

	if err = winningDriver.Assign(); err != nil {
		return err
	}

	competitors, err := applicationRepo.GetAllByOrderID(ctx, winner.OrderID())
	if err != nil {
		return err
	}

	var rejected []*application.Application
	for _, competitor := range competitors {
		if competitor.ID().IsEqual(winner.ID()) || !competitor.IsPending() {
			continue
		}

		if err = competitor.Reject(); err != nil {
			return err
		}

		if err = applicationRepo.Update(ctx, competitor); err != nil {
			return err
		}

		rejected = append(rejected, competitor)
	}

	if err = applicationRepo.Update(ctx, winner); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, wonOrder); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, winningDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyDrivers(ctx, winner, rejected)

	if err = h.publisher.Publish(ctx, events.NewDriverAssigned(wonOrder, winningDriver.ID())); err != nil {
		slog.Warn("failed to publish driver assigned event",
			"orderID", wonOrder.ID().String(), "error", err)
	}

	return nil
}

// notifyDrivers informs the winner and the auto-rejected applicants.
// Failures are logged, never propagated: the assignment already happened.
func (h AcceptApplicationCommandHandler) notifyDrivers(
	ctx context.Context,
	winner *application.Application,
	rejected []*application.Application,
) {
	message := fmt.Sprintf("Your application for order %s was accepted", winner.OrderID())
	if err := h.notifier.NotifyDriver(ctx, winner.DriverID(), message); err != nil {
		slog.Warn("failed to notify accepted driver",
			"driverID", winner.DriverID().String(), "error", err)
	}

	for _, loser := range rejected {
		message = fmt.Sprintf("Your application for order %s was not selected", loser.OrderID())
		if err := h.notifier.NotifyDriver(ctx, loser.DriverID(), message); err != nil {
			slog.Warn("failed to notify rejected driver",
				"driverID", loser.DriverID().String(), "error", err)
		}
	}
}
