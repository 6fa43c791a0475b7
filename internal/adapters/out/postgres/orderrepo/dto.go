// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for querying by status, driver assignment and slot occupancy.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	TimeSlotID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_slot_date"`
	ScheduledDate time.Time  `gorm:"not null;index:idx_orders_slot_date"`
	Pickup        AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery      AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Items         []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice    MoneyDTO   `gorm:"embedded;embeddedPrefix:total_price_"`
	Status        int        `gorm:"not null;index"`
	PaymentMethod int        `gorm:"not null"`
	OrderedAt     time.Time  `gorm:"not null"`
	Version       int64      `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded geographic point plus its street address.
type AddressDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Address   string  `gorm:"type:varchar(512);not null"`
}

// MoneyDTO represents an embedded monetary amount in minor units.
type MoneyDTO struct {
	Amount   int64  `gorm:"not null"`
	Currency string `gorm:"type:varchar(3);not null"`
}

// ItemDTO represents a persisted order line item. The composite primary key
// (order id, service id) keeps association re-saves idempotent: items never
// change after the order is placed.
type ItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   MoneyDTO  `gorm:"embedded;embeddedPrefix:unit_price_"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including line items and optional driver assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     orderID,
			ServiceID:   item.ServiceID().Bytes(),
			ServiceName: item.ServiceName(),
			Quantity:    item.Quantity(),
			UnitPrice: MoneyDTO{
				Amount:   item.UnitPrice().Amount(),
				Currency: item.UnitPrice().Currency(),
			},
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    aggregate.CustomerID().Bytes(),
		DriverID:      driverID,
		TimeSlotID:    aggregate.TimeSlotID().Bytes(),
		ScheduledDate: aggregate.ScheduledDate(),
		Pickup: AddressDTO{
			Latitude:  aggregate.PickupLocation().Latitude(),
			Longitude: aggregate.PickupLocation().Longitude(),
			Address:   aggregate.PickupAddress(),
		},
		Delivery: AddressDTO{
			Latitude:  aggregate.DeliveryLocation().Latitude(),
			Longitude: aggregate.DeliveryLocation().Longitude(),
			Address:   aggregate.DeliveryAddress(),
		},
		Items: items,
		TotalPrice: MoneyDTO{
			Amount:   aggregate.TotalPrice().Amount(),
			Currency: aggregate.TotalPrice().Currency(),
		},
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentMethod()),
		OrderedAt:     aggregate.OrderedAt(),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	timeSlotID, err := kernel.UUIDFromBytes(dto.TimeSlotID[:])
	if err != nil {
		return nil, err
	}

	pickupLocation, err := kernel.NewLocation(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}

	deliveryLocation, err := kernel.NewLocation(dto.Delivery.Latitude, dto.Delivery.Longitude)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice.Amount, dto.TotalPrice.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		driverID,
		timeSlotID,
		dto.ScheduledDate,
		pickupLocation,
		dto.Pickup.Address,
		deliveryLocation,
		dto.Delivery.Address,
		items,
		totalPrice,
		order.Status(dto.Status),
		payment.Method(dto.PaymentMethod),
		dto.OrderedAt,
		dto.Version,
	)
}

// itemToDomain converts a line item DTO back to its domain value.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice.Amount, dto.UnitPrice.Currency)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(serviceID, dto.ServiceName, dto.Quantity, unitPrice)
}
