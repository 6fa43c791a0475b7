// Package slotrepo provides data transfer objects and mapping functions for
// time slot persistence.
package slotrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/timeslot"

	"github.com/google/uuid"
)

// TimeSlotDTO represents the database structure for persisting time slots.
// Its row doubles as the lock target for capacity reservation: bookings take
// SELECT ... FOR UPDATE on the slot row before counting active orders.
type TimeSlotDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	StartTime   string    `gorm:"type:varchar(5);not null"`
	EndTime     string    `gorm:"type:varchar(5);not null"`
	MaxCapacity int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
}

// TableName specifies the database table name for time slot entities.
func (TimeSlotDTO) TableName() string {
	return "time_slots"
}

// fromDomain converts a time slot domain entity to its database representation.
func fromDomain(slot *timeslot.TimeSlot) TimeSlotDTO {
	return TimeSlotDTO{
		ID:          slot.ID().Bytes(),
		Name:        slot.Name(),
		StartTime:   slot.StartTime(),
		EndTime:     slot.EndTime(),
		MaxCapacity: slot.MaxCapacity(),
		IsActive:    slot.IsActive(),
	}
}

// toDomain converts a database DTO to a time slot domain entity using
// RestoreTimeSlot.
func toDomain(dto TimeSlotDTO) (*timeslot.TimeSlot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return timeslot.RestoreTimeSlot(id, dto.Name, dto.StartTime, dto.EndTime, dto.MaxCapacity, dto.IsActive)
}
