// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Maps driver domain entities to relational database tables with indexing
// on status for availability queries.
type DriverDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Phone    string      `gorm:"type:varchar(32);not null"`
	Vehicle  string      `gorm:"type:varchar(255);not null"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Rating   float64     `gorm:"not null;default:0"`
	Status   int         `gorm:"not null;index"`
	Version  int64       `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO represents the embedded location coordinates within the driver table.
// Stores the driver's last reported position.
type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Phone:   aggregate.Phone(),
		Vehicle: aggregate.Vehicle(),
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Rating:  aggregate.Rating(),
		Status:  int(aggregate.Status()),
		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the complete aggregate including status using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id, dto.Name, dto.Phone, dto.Vehicle, loc, dto.Rating, driver.Status(dto.Status), dto.Version)
}
