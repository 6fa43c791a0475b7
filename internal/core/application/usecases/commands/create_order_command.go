package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemData describes one requested service line in a create order command.
// Unit prices arrive in minor units of the order currency.
type ItemData struct {
	ServiceID   kernel.UUID
	ServiceName string
	Quantity    int
	UnitPrice   int64
}

// CreateOrderCommand represents a customer's request to place a laundry
// order: the services, the pickup time slot on a scheduled date, pickup and
// delivery locations and the payment method.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	timeSlotID       kernel.UUID
	scheduledDate    time.Time
	pickupLocation   kernel.Location
	pickupAddress    string
	deliveryLocation kernel.Location
	deliveryAddress  string
	items            []ItemData
	paymentMethod    payment.Method
	currency         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Currency may be empty, in which case the marketplace default is used.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	timeSlotID kernel.UUID,
	scheduledDate time.Time,
	pickupLocation kernel.Location,
	pickupAddress string,
	deliveryLocation kernel.Location,
	deliveryAddress string,
	items []ItemData,
	paymentMethod payment.Method,
	currency string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setTimeSlotID(timeSlotID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setPickupLocation(pickupLocation),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDeliveryLocation(deliveryLocation),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TimeSlotID returns the pickup time slot to book into.
func (c CreateOrderCommand) TimeSlotID() kernel.UUID {
	return c.timeSlotID
}

// ScheduledDate returns the calendar date of the pickup.
func (c CreateOrderCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// PickupLocation returns the pickup coordinates.
func (c CreateOrderCommand) PickupLocation() kernel.Location {
	return c.pickupLocation
}

// PickupAddress returns the human-readable pickup address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryLocation returns the delivery coordinates.
func (c CreateOrderCommand) DeliveryLocation() kernel.Location {
	return c.deliveryLocation
}

// DeliveryAddress returns the human-readable delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the requested service lines.
func (c CreateOrderCommand) Items() []ItemData {
	return c.items
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() payment.Method {
	return c.paymentMethod
}

// Currency returns the order currency code.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTimeSlotID(timeSlotID kernel.UUID) error {
	if err := timeSlotID.Validate(); err != nil {
		return err
	}
	c.timeSlotID = timeSlotID
	return nil
}

func (c *CreateOrderCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateOrderCommand) setPickupLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.pickupLocation = location
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	c.pickupAddress = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.deliveryLocation = location
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemData) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	if currency == "" {
		currency = kernel.DefaultCurrency
	}
	c.currency = currency
	return nil
}
