package slotrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/timeslot"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTimeSlotRepository implements TimeSlotRepository using GORM.
type GormTimeSlotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTimeSlotRepository creates a new GORM time slot repository.
func NewGormTimeSlotRepository(db *gorm.DB, tracker aggregateTracker) *GormTimeSlotRepository {
	return &GormTimeSlotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new time slot to the database.
func (r *GormTimeSlotRepository) Add(ctx context.Context, slot *timeslot.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(slot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(slot.ID(), slot)
	return nil
}

// Update saves an existing time slot to the database. Slots carry no version
// column: they are admin-maintained configuration, not contended aggregates.
func (r *GormTimeSlotRepository) Update(ctx context.Context, slot *timeslot.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(slot)
	result := r.db.WithContext(ctx).Model(&TimeSlotDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":         dto.Name,
			"start_time":   dto.StartTime,
			"end_time":     dto.EndTime,
			"max_capacity": dto.MaxCapacity,
			"is_active":    dto.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("time slot", slot.ID().String())
	}

	r.tracker.TrackAggregate(slot.ID(), slot)
	return nil
}

// Get retrieves a time slot by ID.
func (r *GormTimeSlotRepository) Get(ctx context.Context, id kernel.UUID) (*timeslot.TimeSlot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TimeSlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("time slot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a time slot and locks its row until the surrounding
// transaction ends. Concurrent bookings into the same slot serialize here,
// which is what keeps the capacity count race-free.
func (r *GormTimeSlotRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*timeslot.TimeSlot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TimeSlotDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("time slot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
