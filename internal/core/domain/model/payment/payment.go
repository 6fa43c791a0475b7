package payment

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not created
// through the NewPayment factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment represents a customer payment processed by an external gateway.
// It is an aggregate root that tracks the gateway outcome for an order (or a
// wallet top-up when no order is linked).
//
// Payment follows these invariants:
//   - Created in Pending status
//   - Once the status leaves Pending it is terminal; Complete/Fail on a
//     non-pending payment returns ErrPaymentAlreadyFinal, which callers use
//     to treat webhook redeliveries as no-ops
//   - The gateway transaction reference is recorded at completion time
type Payment struct {
	// id is the unique identifier for the payment
	id kernel.UUID

	// customerID is the paying customer
	customerID kernel.UUID

	// orderID links the payment to an order; nil for wallet top-ups
	orderID *kernel.UUID

	// amount is the charged amount
	amount kernel.Money

	// method is how the customer pays
	method Method

	// status is the current state in the payment lifecycle
	status Status

	// transactionRef is the external gateway transaction reference
	transactionRef string

	// gateway names the external payment gateway
	gateway string

	// createdAt is when the payment was initiated
	createdAt time.Time

	// version is the optimistic concurrency token
	version int64

	isConstructed bool
}

// NewPayment creates a Pending payment for the given customer.
// orderID may be nil for wallet top-ups. Amount must be a valid Money value
// and method a valid payment method.
func NewPayment(
	id kernel.UUID,
	customerID kernel.UUID,
	orderID *kernel.UUID,
	amount kernel.Money,
	method Method,
	gateway string,
) (*Payment, error) {
	payment := &Payment{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setCustomerID(customerID),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
		payment.setMethod(method),
		payment.setGateway(gateway),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a Payment aggregate from persistent storage,
// preserving its status, transaction reference and concurrency version.
func RestorePayment(
	id kernel.UUID,
	customerID kernel.UUID,
	orderID *kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	transactionRef string,
	gateway string,
	createdAt time.Time,
	version int64,
) (*Payment, error) {
	payment := &Payment{
		transactionRef: transactionRef,
		createdAt:      createdAt,
		version:        version,
		isConstructed:  true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setCustomerID(customerID),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
		payment.setMethod(method),
		payment.setStatus(status),
		payment.setGateway(gateway),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the paying customer's id.
func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

// OrderID returns the linked order id, or nil for wallet top-ups.
func (p *Payment) OrderID() *kernel.UUID {
	return p.orderID
}

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current status of the payment.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionRef returns the external gateway transaction reference,
// empty until the payment completes.
func (p *Payment) TransactionRef() string {
	return p.transactionRef
}

// Gateway returns the name of the external payment gateway.
func (p *Payment) Gateway() string {
	return p.gateway
}

// CreatedAt returns when the payment was initiated.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// Version returns the optimistic concurrency token.
func (p *Payment) Version() int64 {
	return p.version
}

// IsPending reports whether the gateway outcome is still unknown.
func (p *Payment) IsPending() bool {
	return p.status == Pending
}

// Complete marks the payment as Completed and records the gateway
// transaction reference. Only valid while Pending.
func (p *Payment) Complete(transactionRef string) error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.transactionRef = transactionRef
	return nil
}

// Fail marks the payment as Failed. Only valid while Pending.
func (p *Payment) Fail() error {
	newStatus, err := p.status.Fail()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Payment) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Payment) setGateway(gateway string) error {
	if gateway == "" {
		return errs.NewValueIsRequiredError("gateway")
	}
	p.gateway = gateway
	return nil
}
