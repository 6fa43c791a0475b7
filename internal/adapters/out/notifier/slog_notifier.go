// Package notifier provides a logging implementation of the notifier port.
// Real delivery channels (push, SMS) plug in behind the same interface.
package notifier

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
)

// SlogNotifier writes notifications to the structured log instead of
// delivering them. Used until a real delivery channel is wired in and as the
// fallback in development environments.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that logs every message.
func NewSlogNotifier(logger *slog.Logger) SlogNotifier {
	return SlogNotifier{logger: logger.With("component", "notifier")}
}

// NotifyDriver logs a message addressed to a driver.
func (n SlogNotifier) NotifyDriver(ctx context.Context, driverID kernel.UUID, message string) error {
	n.logger.InfoContext(ctx, "driver notification",
		"driverID", driverID.String(), "message", message)
	return nil
}

// NotifyCustomer logs a message addressed to a customer.
func (n SlogNotifier) NotifyCustomer(ctx context.Context, customerID kernel.UUID, message string) error {
	n.logger.InfoContext(ctx, "customer notification",
		"customerID", customerID.String(), "message", message)
	return nil
}
