package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/timeslot"
)

// TimeSlotRepository defines the persistence contract for time slots.
type TimeSlotRepository interface {
	// Add persists a new time slot to storage.
	Add(ctx context.Context, slot *timeslot.TimeSlot) error

	// Update persists changes to an existing time slot.
	Update(ctx context.Context, slot *timeslot.TimeSlot) error

	// Get retrieves a time slot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*timeslot.TimeSlot, error)

	// GetForUpdate retrieves a time slot and locks its row for the rest of
	// the transaction (SELECT ... FOR UPDATE). Concurrent bookings into the
	// same slot serialize on this lock, which makes the capacity check and
	// the subsequent insert atomic.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*timeslot.TimeSlot, error)
}
