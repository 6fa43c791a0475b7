package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrProcessPaymentWebhookCommandIsNotConstructed = errors.New(
	"ProcessPaymentWebhookCommand must be created via NewProcessPaymentWebhookCommand constructor",
)

// ProcessPaymentWebhookCommand carries a payment gateway callback: the raw
// payload bytes exactly as received (the signature is computed over them),
// the gateway signature, and the fields already parsed out of the payload.
type ProcessPaymentWebhookCommand struct { //nolint:recvcheck //using for validation
	payload        []byte
	signature      string
	paymentID      kernel.UUID
	success        bool
	transactionRef string

	guard guard.ConstructorGuard
}

// NewProcessPaymentWebhookCommand creates a command from a gateway callback.
// paymentID is the merchant reference the gateway echoes back; transactionRef
// is the gateway's own transaction id. A successful settlement must carry it;
// failure callbacks may arrive without one.
func NewProcessPaymentWebhookCommand(
	payload []byte,
	signature string,
	paymentID kernel.UUID,
	success bool,
	transactionRef string,
) (ProcessPaymentWebhookCommand, error) {
	cmd := ProcessPaymentWebhookCommand{
		success: success,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayload(payload),
		cmd.setSignature(signature),
		cmd.setPaymentID(paymentID),
		cmd.setTransactionRef(transactionRef),
	); err != nil {
		return ProcessPaymentWebhookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentWebhookCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentWebhookCommandIsNotConstructed)
}

// Payload returns the raw callback payload the signature covers.
func (c ProcessPaymentWebhookCommand) Payload() []byte {
	return c.payload
}

// Signature returns the gateway signature of the payload.
func (c ProcessPaymentWebhookCommand) Signature() string {
	return c.signature
}

// PaymentID returns the payment the callback settles.
func (c ProcessPaymentWebhookCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Success reports whether the gateway confirmed the payment.
func (c ProcessPaymentWebhookCommand) Success() bool {
	return c.success
}

// TransactionRef returns the gateway's transaction id.
func (c ProcessPaymentWebhookCommand) TransactionRef() string {
	return c.transactionRef
}

func (c *ProcessPaymentWebhookCommand) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}
	c.payload = payload
	return nil
}

func (c *ProcessPaymentWebhookCommand) setSignature(signature string) error {
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}
	c.signature = signature
	return nil
}

func (c *ProcessPaymentWebhookCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *ProcessPaymentWebhookCommand) setTransactionRef(transactionRef string) error {
	if c.success && transactionRef == "" {
		return errs.NewValueIsRequiredError("transactionRef")
	}
	c.transactionRef = transactionRef
	return nil
}
