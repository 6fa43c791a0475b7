package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item belonging exclusively to one Order. It references a
// catalog service by id and captures the unit price at order-creation time,
// so later catalog price changes never affect an existing order.
type Item struct { //nolint:recvcheck //using for validation
	serviceID   kernel.UUID
	serviceName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line item.
// Quantity must be at least 1 and the unit price must be a valid Money value.
func NewItem(serviceID kernel.UUID, serviceName string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setServiceID(serviceID),
		item.setServiceName(serviceName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ServiceID returns the id of the catalog service this line refers to.
func (i Item) ServiceID() kernel.UUID {
	return i.serviceID
}

// ServiceName returns the display name captured at order time.
func (i Item) ServiceName() string {
	return i.serviceName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit snapshotted at order-creation time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyBy(i.quantity)
}

func (i *Item) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	i.serviceID = serviceID
	return nil
}

func (i *Item) setServiceName(serviceName string) error {
	if serviceName == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}
	i.serviceName = serviceName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
