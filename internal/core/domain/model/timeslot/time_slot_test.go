package timeslot_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSlot(t *testing.T, capacity int) *timeslot.TimeSlot {
	t.Helper()

	slot, err := timeslot.NewTimeSlot(kernel.NewUUID(), "Morning 09:00-12:00", "09:00", "12:00", capacity)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("should create active slot", func(t *testing.T) {
		id := kernel.NewUUID()

		slot, err := timeslot.NewTimeSlot(id, "Morning 09:00-12:00", "09:00", "12:00", 20)

		require.NoError(t, err)
		require.NoError(t, slot.Validate())
		assert.True(t, slot.ID().IsEqual(id))
		assert.Equal(t, "Morning 09:00-12:00", slot.Name())
		assert.Equal(t, "09:00", slot.StartTime())
		assert.Equal(t, "12:00", slot.EndTime())
		assert.Equal(t, 20, slot.MaxCapacity())
		assert.True(t, slot.IsActive())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		slot, err := timeslot.NewTimeSlot(kernel.NewUUID(), "", "09:00", "12:00", 20)

		require.Error(t, err)
		assert.Nil(t, slot)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with malformed times", func(t *testing.T) {
		slot, err := timeslot.NewTimeSlot(kernel.NewUUID(), "Morning", "9am", "12:00", 20)

		require.Error(t, err)
		assert.Nil(t, slot)
		assert.Contains(t, err.Error(), "startTime")
	})

	t.Run("should fail when end is not after start", func(t *testing.T) {
		slot, err := timeslot.NewTimeSlot(kernel.NewUUID(), "Morning", "12:00", "09:00", 20)

		require.Error(t, err)
		assert.Nil(t, slot)
		assert.Contains(t, err.Error(), "endTime")
	})

	t.Run("should fail with zero capacity", func(t *testing.T) {
		slot, err := timeslot.NewTimeSlot(kernel.NewUUID(), "Morning", "09:00", "12:00", 0)

		require.Error(t, err)
		assert.Nil(t, slot)
		assert.Contains(t, err.Error(), "maxCapacity")
	})
}

func TestTimeSlot_CheckCapacity(t *testing.T) {
	t.Run("should accept booking below capacity", func(t *testing.T) {
		slot := createSlot(t, 3)

		require.NoError(t, slot.CheckCapacity(0))
		require.NoError(t, slot.CheckCapacity(2))
	})

	t.Run("should reject booking at capacity", func(t *testing.T) {
		slot := createSlot(t, 3)

		err := slot.CheckCapacity(3)

		require.Error(t, err)
		assert.ErrorIs(t, err, timeslot.ErrTimeSlotFull)
	})

	t.Run("should reject booking above capacity", func(t *testing.T) {
		slot := createSlot(t, 3)

		err := slot.CheckCapacity(7)

		require.Error(t, err)
		assert.ErrorIs(t, err, timeslot.ErrTimeSlotFull)
	})

	t.Run("should reject booking into inactive slot", func(t *testing.T) {
		slot := createSlot(t, 3)
		slot.Deactivate()

		err := slot.CheckCapacity(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, timeslot.ErrTimeSlotInactive)
	})

	t.Run("should accept booking after reactivation", func(t *testing.T) {
		slot := createSlot(t, 3)
		slot.Deactivate()
		slot.Activate()

		require.NoError(t, slot.CheckCapacity(0))
	})

	t.Run("should allow capacity of one", func(t *testing.T) {
		slot := createSlot(t, 1)

		require.NoError(t, slot.CheckCapacity(0))
		require.ErrorIs(t, slot.CheckCapacity(1), timeslot.ErrTimeSlotFull)
	})
}

func TestTimeSlot_Validate(t *testing.T) {
	t.Run("should fail validation for nil slot", func(t *testing.T) {
		var slot *timeslot.TimeSlot

		err := slot.Validate()

		require.Error(t, err)
		assert.Equal(t, timeslot.ErrTimeSlotIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value slot", func(t *testing.T) {
		var slot timeslot.TimeSlot

		err := slot.Validate()

		require.Error(t, err)
		assert.Equal(t, timeslot.ErrTimeSlotIsNotConstructed, err)
	})
}
