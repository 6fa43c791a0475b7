package driver_test

import (
	"testing"

	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDriver(t *testing.T) *driver.Driver {
	t.Helper()

	location, err := kernel.NewLocation(30.0444, 31.2357)
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location)
	require.NoError(t, err)
	return d
}

func approvedDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d := createDriver(t)
	require.NoError(t, d.Approve())
	return d
}

func TestNewDriver(t *testing.T) {
	location, _ := kernel.NewLocation(30.0444, 31.2357)

	t.Run("should create driver in pending approval", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Ahmed Hassan", d.Name())
		assert.Equal(t, "+201001234567", d.Phone())
		assert.Equal(t, "Motorcycle - Cairo 1234", d.Vehicle())
		assert.Equal(t, driver.PendingApproval, d.Status())
		assert.False(t, d.CanTakeOrder())
		assert.Zero(t, d.Rating())
		assert.Equal(t, int64(1), d.Version())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := driver.NewDriver(invalidID, "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "", "+201001234567", "Motorcycle - Cairo 1234", location)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Hassan", "", "Motorcycle - Cairo 1234", location)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("should fail with empty vehicle", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Hassan", "+201001234567", "", location)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "vehicle")
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		var invalidLocation kernel.Location

		d, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", invalidLocation)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("should restore driver with stored state", func(t *testing.T) {
		location, _ := kernel.NewLocation(30.0444, 31.2357)
		id := kernel.NewUUID()

		d, err := driver.RestoreDriver(id, "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location, 4.7, driver.OnRoute, 5)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Motorcycle - Cairo 1234", d.Vehicle())
		assert.InDelta(t, 4.7, d.Rating(), 0.001)
		assert.Equal(t, driver.OnRoute, d.Status())
		assert.Equal(t, int64(5), d.Version())
	})

	t.Run("should fail with invalid stored status", func(t *testing.T) {
		location, _ := kernel.NewLocation(30.0444, 31.2357)

		d, err := driver.RestoreDriver(kernel.NewUUID(), "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location, 4.7, driver.Unknown, 1)

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should fail with rating out of range", func(t *testing.T) {
		location, _ := kernel.NewLocation(30.0444, 31.2357)

		d, err := driver.RestoreDriver(kernel.NewUUID(), "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location, 5.5, driver.Available, 1)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "rating")
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("should fail validation for nil driver", func(t *testing.T) {
		var d *driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value driver", func(t *testing.T) {
		var d driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})
}

func TestDriver_Approval(t *testing.T) {
	t.Run("should approve pending driver", func(t *testing.T) {
		d := createDriver(t)

		err := d.Approve()

		require.NoError(t, err)
		assert.Equal(t, driver.Available, d.Status())
		assert.True(t, d.CanTakeOrder())
	})

	t.Run("should reject pending driver", func(t *testing.T) {
		d := createDriver(t)

		err := d.Reject()

		require.NoError(t, err)
		assert.Equal(t, driver.Rejected, d.Status())
		assert.False(t, d.CanTakeOrder())
	})

	t.Run("should fail to approve twice", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Approve()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrInvalidDriverTransition)
	})

	t.Run("should fail to reject approved driver", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Reject()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrInvalidDriverTransition)
	})
}

func TestDriver_Revoke(t *testing.T) {
	t.Run("should revoke available driver", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Revoke()

		require.NoError(t, err)
		assert.Equal(t, driver.Revoked, d.Status())
	})

	t.Run("should fail to revoke driver with active order", func(t *testing.T) {
		d := approvedDriver(t)
		_ = d.Assign()

		err := d.Revoke()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrInvalidDriverTransition)
		assert.Equal(t, driver.OnRoute, d.Status())
	})

	t.Run("should fail to revoke twice", func(t *testing.T) {
		d := approvedDriver(t)
		_ = d.Revoke()

		err := d.Revoke()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrInvalidDriverTransition)
	})
}

func TestDriver_WorkingLifecycle(t *testing.T) {
	t.Run("should assign available driver", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Assign()

		require.NoError(t, err)
		assert.Equal(t, driver.OnRoute, d.Status())
		assert.False(t, d.CanTakeOrder())
	})

	t.Run("should fail to assign unapproved driver", func(t *testing.T) {
		d := createDriver(t)

		err := d.Assign()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrDriverNotAvailable)
		assert.Equal(t, driver.PendingApproval, d.Status())
	})

	t.Run("should fail to assign driver twice", func(t *testing.T) {
		d := approvedDriver(t)
		_ = d.Assign()

		err := d.Assign()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrDriverNotAvailable)
	})

	t.Run("should progress on route to busy to available", func(t *testing.T) {
		d := approvedDriver(t)
		require.NoError(t, d.Assign())

		require.NoError(t, d.StartProcessing())
		assert.Equal(t, driver.Busy, d.Status())

		require.NoError(t, d.Release())
		assert.Equal(t, driver.Available, d.Status())
		assert.True(t, d.CanTakeOrder())
	})

	t.Run("should release driver straight from on route", func(t *testing.T) {
		d := approvedDriver(t)
		_ = d.Assign()

		err := d.Release()

		require.NoError(t, err)
		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("should fail to release idle driver", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Release()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrInvalidDriverTransition)
	})
}

func TestDriver_OnlineOffline(t *testing.T) {
	t.Run("should toggle offline and online", func(t *testing.T) {
		d := approvedDriver(t)

		require.NoError(t, d.GoOffline())
		assert.Equal(t, driver.Offline, d.Status())
		assert.False(t, d.CanTakeOrder())

		require.NoError(t, d.GoOnline())
		assert.Equal(t, driver.Available, d.Status())
		assert.True(t, d.CanTakeOrder())
	})

	t.Run("should fail to go offline while working", func(t *testing.T) {
		d := approvedDriver(t)
		_ = d.Assign()

		err := d.GoOffline()

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrInvalidDriverTransition)
	})
}

func TestDriver_MoveTo(t *testing.T) {
	t.Run("should update location", func(t *testing.T) {
		d := approvedDriver(t)
		newLocation, _ := kernel.NewLocation(31.2001, 29.9187)

		err := d.MoveTo(newLocation)

		require.NoError(t, err)
		assert.True(t, d.Location().IsEqual(newLocation))
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		d := approvedDriver(t)
		var invalidLocation kernel.Location

		err := d.MoveTo(invalidLocation)

		require.Error(t, err)
	})
}

func TestDriver_Rate(t *testing.T) {
	t.Run("should record rating", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Rate(4.5)

		require.NoError(t, err)
		assert.InDelta(t, 4.5, d.Rating(), 0.001)
	})

	t.Run("should fail with negative rating", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Rate(-0.1)

		require.Error(t, err)
		assert.Zero(t, d.Rating())
	})

	t.Run("should fail with rating above five", func(t *testing.T) {
		d := approvedDriver(t)

		err := d.Rate(5.1)

		require.Error(t, err)
		assert.Zero(t, d.Rating())
	})
}
