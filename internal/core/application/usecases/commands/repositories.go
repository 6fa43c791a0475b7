// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ApplicationRepoFactory provides access to the application repository within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// TimeSlotRepoFactory provides access to the time slot repository within a transaction.
	TimeSlotRepoFactory interface {
		TimeSlotRepository() ports.TimeSlotRepository
	}

	// OrderUoW manages transactions for order-only operations, such as
	// cancelling an order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookingUoW manages transactions for placing an order: the time slot row
	// lock, the capacity count over orders, the new order and its pending
	// payment all happen inside one transaction.
	BookingUoW interface {
		TxManager
		OrderRepoFactory
		TimeSlotRepoFactory
		PaymentRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// AssignmentUoW manages transactions that touch an order together with a
	// driver: direct assignment, status updates that release the driver.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ApplicationUoW manages transactions around competitive driver
	// applications: the order, the applying drivers and their applications.
	ApplicationUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		ApplicationRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// PaymentUoW manages transactions that settle payments and move the
	// linked orders accordingly.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
