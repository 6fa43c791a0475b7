package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentExpiryJob manages the scheduled expiry of stale pending payments.
// Runs every minute to fail payments the gateway never settled and release
// their orders' slot capacity.
type PaymentExpiryJob struct {
	handler commands.FailStalePaymentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentExpiryJob creates a new job for expiring stale payments.
// Uses FailStalePaymentsCommandHandler to process the sweep every minute.
func NewPaymentExpiryJob(handler commands.FailStalePaymentsCommandHandler, logger *slog.Logger) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_expiry_job"),
	}
}

// Start begins the payment expiry job to run every minute.
func (j *PaymentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewFailStalePaymentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment expiry job started (running every minute)")
	return nil
}

// Stop stops the payment expiry job.
func (j *PaymentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment expiry job stopped")
}
