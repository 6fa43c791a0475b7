package cmd

import "time"

// Config carries everything the process reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PaymentGateway is the gateway identifier stamped on created payments.
	PaymentGateway string
	// PaymobHMACSecret authenticates gateway webhook callbacks.
	PaymobHMACSecret string
	// PendingPaymentTTL is how long a payment may stay pending before the
	// expiry sweep fails it.
	PendingPaymentTTL time.Duration

	// EventQueueSize caps the in-process event bus backlog.
	EventQueueSize int
}
