package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without any line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order represents a laundry pickup-and-delivery order. It is the aggregate
// root that manages the order lifecycle from creation through driver
// assignment to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer
//   - Must contain at least one line item; the total price is computed from
//     the items at construction time and never recalculated afterwards
//   - Status transitions follow the lifecycle graph defined on Status
//   - A driver can only be assigned to a Confirmed order, exactly once
//   - Can only be created through NewOrder / RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the customer who placed the order
	customerID kernel.UUID

	// driverID is the assigned driver's ID (nil if unassigned)
	driverID *kernel.UUID

	// timeSlotID is the pickup time slot the order is booked into
	timeSlotID kernel.UUID

	// scheduledDate is the calendar date of the pickup
	scheduledDate time.Time

	// pickupLocation is where the driver collects the items
	pickupLocation kernel.Location

	// pickupAddress is the human-readable pickup address
	pickupAddress string

	// deliveryLocation is where the cleaned items are returned
	deliveryLocation kernel.Location

	// deliveryAddress is the human-readable delivery address
	deliveryAddress string

	// items are the ordered services with prices snapshotted at order time
	items []Item

	// totalPrice is the sum of all item line totals
	totalPrice kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// paymentMethod is how the customer pays for the order
	paymentMethod payment.Method

	// orderedAt is when the order was placed
	orderedAt time.Time

	// version is the optimistic concurrency token
	version int64

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// The order starts in Requested status with no driver assigned. The total
// price is computed as the sum of the item line totals; all items must share
// one currency.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	timeSlotID kernel.UUID,
	scheduledDate time.Time,
	pickupLocation kernel.Location,
	pickupAddress string,
	deliveryLocation kernel.Location,
	deliveryAddress string,
	items []Item,
	paymentMethod payment.Method,
) (*Order, error) {
	order := &Order{
		status:        Requested,
		orderedAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setTimeSlotID(timeSlotID),
		order.setScheduledDate(scheduledDate),
		order.setPickupLocation(pickupLocation),
		order.setPickupAddress(pickupAddress),
		order.setDeliveryLocation(deliveryLocation),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	totalPrice, err := calculateTotal(order.items)
	if err != nil {
		return nil, err
	}
	order.totalPrice = totalPrice

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, driver assignment, total price and concurrency
// version exactly as stored.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	timeSlotID kernel.UUID,
	scheduledDate time.Time,
	pickupLocation kernel.Location,
	pickupAddress string,
	deliveryLocation kernel.Location,
	deliveryAddress string,
	items []Item,
	totalPrice kernel.Money,
	status Status,
	paymentMethod payment.Method,
	orderedAt time.Time,
	version int64,
) (*Order, error) {
	order := &Order{
		orderedAt:     orderedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDriverID(driverID),
		order.setTimeSlotID(timeSlotID),
		order.setScheduledDate(scheduledDate),
		order.setPickupLocation(pickupLocation),
		order.setPickupAddress(pickupAddress),
		order.setDeliveryLocation(deliveryLocation),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
		order.setTotalPrice(totalPrice),
		order.setStatus(status),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Driver returns the assigned driver's ID.
// Returns nil if no driver is assigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// TimeSlotID returns the pickup time slot the order is booked into.
func (o *Order) TimeSlotID() kernel.UUID {
	return o.timeSlotID
}

// ScheduledDate returns the calendar date of the pickup.
func (o *Order) ScheduledDate() time.Time {
	return o.scheduledDate
}

// PickupLocation returns where the driver collects the items.
func (o *Order) PickupLocation() kernel.Location {
	return o.pickupLocation
}

// PickupAddress returns the human-readable pickup address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryLocation returns where the cleaned items are returned.
func (o *Order) DeliveryLocation() kernel.Location {
	return o.deliveryLocation
}

// DeliveryAddress returns the human-readable delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the sum of all item line totals, fixed at order time.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the customer pays for the order.
func (o *Order) PaymentMethod() payment.Method {
	return o.paymentMethod
}

// OrderedAt returns when the order was placed.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int64 {
	return o.version
}

// IsActive reports whether the order still occupies its time slot.
// Orders in a terminal status no longer count against slot capacity.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// Confirm moves the order from Requested to Confirmed, typically after the
// payment gateway reports a successful payment.
func (o *Order) Confirm() error {
	newStatus, err := o.status.TransitionTo(Confirmed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver assigns the order to a driver and updates the status to
// DriverAssigned.
//
// This method enforces the following business rules:
//   - The driver ID must be valid
//   - The order must be in Confirmed status; reassignment is not allowed
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(DriverAssigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// UpdateStatus moves the order along the lifecycle graph to next.
// Terminal orders reject any update with ErrOrderInFinalState; skipping a
// lifecycle stage or moving backwards returns ErrInvalidStatusTransition.
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order before pickup.
// Only Requested and Confirmed orders can be cancelled; Cancelled is terminal.
func (o *Order) Cancel() error {
	if err := o.status.ValidateCancel(); err != nil {
		return err
	}

	o.status = Cancelled
	return nil
}

// FailPayment marks the order as PaymentFailed after the gateway reported a
// failed payment. Only valid while the order is still Requested.
func (o *Order) FailPayment() error {
	newStatus, err := o.status.TransitionTo(PaymentFailed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// calculateTotal sums the line totals of all items.
// Items must all carry the same currency.
func calculateTotal(items []Item) (kernel.Money, error) {
	total, err := items[0].LineTotal()
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range items[1:] {
		lineTotal, err := item.LineTotal()
		if err != nil {
			return kernel.Money{}, err
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setTimeSlotID(timeSlotID kernel.UUID) error {
	if err := timeSlotID.Validate(); err != nil {
		return err
	}
	o.timeSlotID = timeSlotID
	return nil
}

func (o *Order) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	o.scheduledDate = scheduledDate
	return nil
}

func (o *Order) setPickupLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.pickupLocation = location
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setDeliveryLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
