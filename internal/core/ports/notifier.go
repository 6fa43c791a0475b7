package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// Notifier sends out-of-band notifications to marketplace participants.
// Notification failures must never fail the business operation that
// triggered them; callers log and continue.
type Notifier interface {
	// NotifyDriver sends a message to a driver.
	NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error

	// NotifyCustomer sends a message to a customer.
	NotifyCustomer(ctx context.Context, customerID kernel.UUID, message string) error
}
