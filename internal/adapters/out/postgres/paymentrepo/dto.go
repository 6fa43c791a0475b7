// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// This package implements the repository pattern for the payment domain aggregate, handling
// the conversion between domain entities and database representations.
package paymentrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
// OrderID is nullable: wallet top-ups are payments with no linked order.
// The (status, created_at) index serves the expiry sweep over stale
// pending payments.
type PaymentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID        *uuid.UUID `gorm:"type:uuid;index"`
	Amount         MoneyDTO   `gorm:"embedded;embeddedPrefix:amount_"`
	Method         int        `gorm:"not null"`
	Status         int        `gorm:"not null;index:idx_payments_status_created"`
	TransactionRef string     `gorm:"type:varchar(255)"`
	Gateway        string     `gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time  `gorm:"not null;index:idx_payments_status_created"`
	Version        int64      `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// MoneyDTO represents an embedded monetary amount in minor units.
type MoneyDTO struct {
	Value    int64  `gorm:"not null"`
	Currency string `gorm:"type:varchar(3);not null"`
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return PaymentDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		OrderID:    orderID,
		Amount: MoneyDTO{
			Value:    aggregate.Amount().Amount(),
			Currency: aggregate.Amount().Currency(),
		},
		Method:         int(aggregate.Method()),
		Status:         int(aggregate.Status()),
		TransactionRef: aggregate.TransactionRef(),
		Gateway:        aggregate.Gateway(),
		CreatedAt:      aggregate.CreatedAt(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	amount, err := kernel.NewMoney(dto.Amount.Value, dto.Amount.Currency)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		customerID,
		orderID,
		amount,
		payment.Method(dto.Method),
		payment.Status(dto.Status),
		dto.TransactionRef,
		dto.Gateway,
		dto.CreatedAt,
		dto.Version,
	)
}
