package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with errs.ErrVersionIsInvalid when the stored version no longer
	// matches the aggregate's, i.e. a concurrent writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountActiveForSlot counts non-terminal orders booked into the given
	// time slot on the given date. Callers must hold the slot row lock
	// (TimeSlotRepository.GetForUpdate) for the count to be race-free.
	CountActiveForSlot(ctx context.Context, timeSlotID kernel.UUID, scheduledDate time.Time) (int, error)
}
