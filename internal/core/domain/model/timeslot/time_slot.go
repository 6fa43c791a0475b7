package timeslot

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// slotTimeLayout is the wall-clock format used for slot boundaries.
const slotTimeLayout = "15:04"

// Domain errors for time slot operations.
var (
	// ErrTimeSlotIsNotConstructed is returned when using an improperly initialized TimeSlot.
	ErrTimeSlotIsNotConstructed = errors.New("TimeSlot must be created via NewTimeSlot constructor")

	// ErrTimeSlotFull is returned when booking an order into a slot whose
	// active order count already reached the maximum capacity.
	ErrTimeSlotFull = errors.New("time slot capacity exceeded")

	// ErrTimeSlotInactive is returned when booking into a disabled slot.
	ErrTimeSlotInactive = errors.New("time slot is not active")
)

// TimeSlot is a bookable pickup window with a hard capacity limit.
// Capacity counts active orders only; cancelled and failed orders free their
// seat. The count itself lives in the order store — the slot only knows the
// limit and how to judge a count against it.
type TimeSlot struct {
	// id uniquely identifies the time slot
	id kernel.UUID
	// name is the customer-facing label, e.g. "Morning 09:00-12:00"
	name string
	// startTime is the slot's opening wall-clock time, "15:04" format
	startTime string
	// endTime is the slot's closing wall-clock time, "15:04" format
	endTime string
	// maxCapacity is the maximum number of active orders per scheduled date
	maxCapacity int
	// isActive controls whether the slot accepts new bookings
	isActive bool
	// isConstructed ensures the slot was created via NewTimeSlot
	isConstructed bool
}

// NewTimeSlot creates a bookable pickup window.
// Start and end must be valid "HH:MM" wall-clock times with start before end,
// and capacity must be at least 1.
func NewTimeSlot(id kernel.UUID, name string, startTime, endTime string, maxCapacity int) (*TimeSlot, error) {
	slot := &TimeSlot{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		slot.setID(id),
		slot.setName(name),
		slot.setWindow(startTime, endTime),
		slot.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return slot, nil
}

// RestoreTimeSlot reconstructs a TimeSlot from persistent storage.
func RestoreTimeSlot(
	id kernel.UUID,
	name string,
	startTime, endTime string,
	maxCapacity int,
	isActive bool,
) (*TimeSlot, error) {
	slot := &TimeSlot{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		slot.setID(id),
		slot.setName(name),
		slot.setWindow(startTime, endTime),
		slot.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return slot, nil
}

// Validate ensures the TimeSlot instance was properly constructed.
func (s *TimeSlot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrTimeSlotIsNotConstructed
	}
	return nil
}

// ID returns the slot's unique identifier.
func (s *TimeSlot) ID() kernel.UUID {
	return s.id
}

// Name returns the customer-facing label of the slot.
func (s *TimeSlot) Name() string {
	return s.name
}

// StartTime returns the slot's opening wall-clock time in "15:04" format.
func (s *TimeSlot) StartTime() string {
	return s.startTime
}

// EndTime returns the slot's closing wall-clock time in "15:04" format.
func (s *TimeSlot) EndTime() string {
	return s.endTime
}

// MaxCapacity returns the maximum number of active orders per scheduled date.
func (s *TimeSlot) MaxCapacity() int {
	return s.maxCapacity
}

// IsActive reports whether the slot accepts new bookings.
func (s *TimeSlot) IsActive() bool {
	return s.isActive
}

// Deactivate stops the slot from accepting new bookings.
// Existing bookings are unaffected.
func (s *TimeSlot) Deactivate() {
	s.isActive = false
}

// Activate reopens the slot for new bookings.
func (s *TimeSlot) Activate() {
	s.isActive = true
}

// CheckCapacity judges whether one more order fits given the current number
// of active orders booked into this slot for a scheduled date.
//
// Returns:
//   - nil when the booking fits
//   - ErrTimeSlotInactive when the slot is disabled
//   - ErrTimeSlotFull when activeOrders already reached the capacity limit
func (s *TimeSlot) CheckCapacity(activeOrders int) error {
	if !s.isActive {
		return fmt.Errorf("%w: %s", ErrTimeSlotInactive, s.name)
	}

	if activeOrders >= s.maxCapacity {
		return fmt.Errorf("%w: %s has %d of %d active orders",
			ErrTimeSlotFull, s.name, activeOrders, s.maxCapacity)
	}

	return nil
}

func (s *TimeSlot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *TimeSlot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *TimeSlot) setWindow(startTime, endTime string) error {
	start, err := time.Parse(slotTimeLayout, startTime)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("startTime", err)
	}

	end, err := time.Parse(slotTimeLayout, endTime)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("endTime", err)
	}

	if !start.Before(end) {
		return errs.NewValueIsInvalidErrorWithCause("endTime",
			fmt.Errorf("%s is not after %s", endTime, startTime))
	}

	s.startTime = startTime
	s.endTime = endTime
	return nil
}

func (s *TimeSlot) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity",
			fmt.Errorf("%d is not greater than 0", maxCapacity))
	}
	s.maxCapacity = maxCapacity
	return nil
}
