// Package applicationrepo provides data transfer objects and mapping functions
// for driver application persistence.
package applicationrepo

import (
	"time"

	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO represents the database structure for persisting driver
// applications. The composite (order_id, driver_id) index serves both the
// duplicate-application check and the per-order competitor listing.
type ApplicationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_applications_order_driver"`
	DriverID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_applications_order_driver"`
	Status    int        `gorm:"not null"`
	AppliedAt time.Time  `gorm:"not null"`
	DecidedAt *time.Time `gorm:""`
	Version   int64      `gorm:"not null"`
}

// TableName specifies the database table name for application entities.
func (ApplicationDTO) TableName() string {
	return "applications"
}

// fromDomain converts an application domain aggregate to its database representation.
func fromDomain(aggregate *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		DriverID:  aggregate.DriverID().Bytes(),
		Status:    int(aggregate.Status()),
		AppliedAt: aggregate.AppliedAt(),
		DecidedAt: aggregate.DecidedAt(),
		Version:   aggregate.Version(),
	}
}

// toDomain converts a database DTO to an application domain aggregate using
// RestoreApplication.
func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(
		id,
		orderID,
		driverID,
		application.Status(dto.Status),
		dto.AppliedAt,
		dto.DecidedAt,
		dto.Version,
	)
}
