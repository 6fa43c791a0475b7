package cmd

import (
	"context"
	"log/slog"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/eventbus"
	"laundry/internal/adapters/out/notifier"
	"laundry/internal/adapters/out/paymob"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/events"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each Create method
// returns a fully assembled handler; handlers are cheap value types and are
// built per call.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	eventBus   *eventbus.InProcessEventBus
	notifier   ports.Notifier
	verifier   ports.SignatureVerifier
}

// NewCompositionRoot builds the object graph shared by HTTP handlers and jobs.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventBus:   eventbus.NewInProcessEventBus(logger, config.EventQueueSize),
		notifier:   notifier.NewSlogNotifier(logger),
		verifier:   paymob.NewHMACVerifier(config.PaymobHMACSecret),
	}
}

// EventBus exposes the bus for subscribing consumers and for shutdown.
func (c *CompositionRoot) EventBus() *eventbus.InProcessEventBus {
	return c.eventBus
}

// Close releases long-lived resources owned by the root.
func (c *CompositionRoot) Close() {
	c.eventBus.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.eventBus, c.config.PaymentGateway)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateApplyToOrderCommandHandler() commands.ApplyToOrderCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyToOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptApplicationCommandHandler() commands.AcceptApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptApplicationCommandHandler(f, c.eventBus, c.notifier)
}

func (c *CompositionRoot) CreateProcessPaymentWebhookCommandHandler() commands.ProcessPaymentWebhookCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentWebhookCommandHandler(f, c.verifier, c.eventBus)
}

func (c *CompositionRoot) CreateFailStalePaymentsCommandHandler() commands.FailStalePaymentsCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailStalePaymentsCommandHandler(f, c.eventBus, c.config.PendingPaymentTTL)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderApplicationsQueryHandler() queries.GetOrderApplicationsQueryHandler {
	return queries.NewGetOrderApplicationsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateApplyToOrderCommandHandler(),
		c.CreateAcceptApplicationCommandHandler(),
		c.CreateProcessPaymentWebhookCommandHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetOrderApplicationsQueryHandler(),
	)
}

// SubscribeNotificationHandlers connects order lifecycle events to customer
// and driver notifications. Called once at startup, before traffic flows.
func (c *CompositionRoot) SubscribeNotificationHandlers() {
	c.eventBus.Subscribe("order.confirmed", eventbus.HandlerFunc(
		func(ctx context.Context, event events.DomainEvent) error {
			confirmed, ok := event.(events.OrderConfirmed)
			if !ok {
				return nil
			}
			return c.notifier.NotifyCustomer(ctx, confirmed.CustomerID,
				"Your order is confirmed and will be picked up as scheduled.")
		}))

	c.eventBus.Subscribe("order.driver_assigned", eventbus.HandlerFunc(
		func(ctx context.Context, event events.DomainEvent) error {
			assigned, ok := event.(events.DriverAssigned)
			if !ok {
				return nil
			}
			if err := c.notifier.NotifyDriver(ctx, assigned.DriverID,
				"You have been assigned a pickup."); err != nil {
				return err
			}
			return c.notifier.NotifyCustomer(ctx, assigned.CustomerID,
				"A driver has been assigned to your order.")
		}))

	c.eventBus.Subscribe("order.status_changed", eventbus.HandlerFunc(
		func(ctx context.Context, event events.DomainEvent) error {
			changed, ok := event.(events.OrderStatusChanged)
			if !ok {
				return nil
			}
			message, ok := statusProgressMessages[changed.To]
			if !ok {
				return nil
			}
			return c.notifier.NotifyCustomer(ctx, changed.CustomerID, message)
		}))

	c.eventBus.Subscribe("order.cancelled", eventbus.HandlerFunc(
		func(ctx context.Context, event events.DomainEvent) error {
			cancelled, ok := event.(events.OrderCancelled)
			if !ok {
				return nil
			}
			return c.notifier.NotifyCustomer(ctx, cancelled.CustomerID,
				"Your order has been cancelled.")
		}))

	c.eventBus.Subscribe("payment.failed", eventbus.HandlerFunc(
		func(ctx context.Context, event events.DomainEvent) error {
			failed, ok := event.(events.PaymentFailed)
			if !ok {
				return nil
			}
			return c.notifier.NotifyCustomer(ctx, failed.CustomerID,
				"Your payment did not complete. Please place the order again.")
		}))
}

// statusProgressMessages maps order progress statuses to the customer-facing
// text pushed on each transition. Confirmation, assignment and cancellation
// have their own dedicated events and messages.
var statusProgressMessages = map[order.Status]string{
	order.PickedUp:       "Your laundry has been picked up.",
	order.InCleaning:     "Your laundry is being cleaned.",
	order.OutForDelivery: "Your laundry is on its way back to you.",
	order.Delivered:      "Your laundry has been delivered. Thank you!",
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFailStalePaymentsCommandHandler(), logger)
}

// The Gorm factory creates the broad ports.UnitOfWork; command handlers
// depend on narrower interfaces. Go interface satisfaction is structural for
// values but not for method results, so these adapters re-type the factory.

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
