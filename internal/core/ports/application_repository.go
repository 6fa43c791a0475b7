package ports

import (
	"context"

	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for driver
// applications.
type ApplicationRepository interface {
	// Add persists a new application to storage.
	Add(ctx context.Context, aggregate *application.Application) error

	// Update persists changes to an existing application.
	// Fails with errs.ErrVersionIsInvalid on a concurrent modification.
	Update(ctx context.Context, aggregate *application.Application) error

	// Get retrieves an application by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// GetAllByOrderID retrieves every application submitted for the order,
	// regardless of status.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*application.Application, error)

	// GetAllByOrderAndDriver retrieves the driver's applications for the
	// order, newest first. Used to enforce the rejection cooldown.
	GetAllByOrderAndDriver(ctx context.Context, orderID, driverID kernel.UUID) ([]*application.Application, error)
}
