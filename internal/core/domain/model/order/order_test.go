package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()

	washPrice, err := kernel.NewMoney(1500, "EGP")
	require.NoError(t, err)
	ironPrice, err := kernel.NewMoney(500, "EGP")
	require.NoError(t, err)

	wash, err := order.NewItem(kernel.NewUUID(), "Wash & Fold", 2, washPrice)
	require.NoError(t, err)
	iron, err := order.NewItem(kernel.NewUUID(), "Ironing", 3, ironPrice)
	require.NoError(t, err)

	return []order.Item{wash, iron}
}

func createOrder(t *testing.T) *order.Order {
	t.Helper()

	pickup, err := kernel.NewLocation(30.0444, 31.2357)
	require.NoError(t, err)
	delivery, err := kernel.NewLocation(30.0626, 31.2497)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		pickup, "12 Tahrir St, Cairo",
		delivery, "5 Nile Corniche, Cairo",
		validItems(t),
		payment.MethodCard,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	pickup, _ := kernel.NewLocation(30.0444, 31.2357)
	delivery, _ := kernel.NewLocation(30.0626, 31.2497)
	scheduledDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		timeSlotID := kernel.NewUUID()

		o, err := order.NewOrder(
			id, customerID, timeSlotID, scheduledDate,
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			validItems(t), payment.MethodCard,
		)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.TimeSlotID().IsEqual(timeSlotID))
		assert.Equal(t, order.Requested, o.Status())
		assert.Equal(t, payment.MethodCard, o.PaymentMethod())
		assert.Nil(t, o.Driver())
		assert.Equal(t, int64(1), o.Version())
		assert.True(t, o.IsActive())
	})

	t.Run("should compute total price from item line totals", func(t *testing.T) {
		o := createOrder(t)

		// 2 x 15.00 + 3 x 5.00 = 45.00 EGP
		assert.Equal(t, int64(4500), o.TotalPrice().Amount())
		assert.Equal(t, "EGP", o.TotalPrice().Currency())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), scheduledDate,
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			nil, payment.MethodCard,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(
			kernel.NewUUID(), invalidID, kernel.NewUUID(), scheduledDate,
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			validItems(t), payment.MethodCard,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero scheduled date", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Time{},
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			validItems(t), payment.MethodCard,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "scheduledDate")
	})

	t.Run("should fail with empty addresses", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), scheduledDate,
			pickup, "",
			delivery, "",
			validItems(t), payment.MethodCard,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "pickupAddress")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should fail with unknown payment method", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), scheduledDate,
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			validItems(t), payment.MethodUnknown,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "not a valid payment method")
	})

	t.Run("should fail when item currencies differ", func(t *testing.T) {
		egpPrice, _ := kernel.NewMoney(1000, "EGP")
		usdPrice, _ := kernel.NewMoney(1000, "USD")
		egpItem, _ := order.NewItem(kernel.NewUUID(), "Wash & Fold", 1, egpPrice)
		usdItem, _ := order.NewItem(kernel.NewUUID(), "Ironing", 1, usdPrice)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), scheduledDate,
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			[]order.Item{egpItem, usdItem}, payment.MethodCard,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored state", func(t *testing.T) {
		pickup, _ := kernel.NewLocation(30.0444, 31.2357)
		delivery, _ := kernel.NewLocation(30.0626, 31.2497)
		driverID := kernel.NewUUID()
		totalPrice, _ := kernel.NewMoney(4500, "EGP")
		orderedAt := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &driverID, kernel.NewUUID(),
			time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			validItems(t), totalPrice,
			order.DriverAssigned, payment.MethodCash, orderedAt, 7,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.DriverAssigned, o.Status())
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.True(t, o.TotalPrice().IsEqual(totalPrice))
		assert.Equal(t, orderedAt, o.OrderedAt())
		assert.Equal(t, int64(7), o.Version())
	})

	t.Run("should fail with invalid stored status", func(t *testing.T) {
		pickup, _ := kernel.NewLocation(30.0444, 31.2357)
		delivery, _ := kernel.NewLocation(30.0626, 31.2497)
		totalPrice, _ := kernel.NewMoney(4500, "EGP")

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(),
			time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			pickup, "12 Tahrir St, Cairo",
			delivery, "5 Nile Corniche, Cairo",
			validItems(t), totalPrice,
			order.Unknown, payment.MethodCash, time.Now(), 1,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm requested order", func(t *testing.T) {
		o := createOrder(t)

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should fail to confirm twice", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()

		err := o.Confirm()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should fail to confirm cancelled order", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Cancel()

		err := o.Confirm()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderInFinalState)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("should assign driver to confirmed order", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()

		err := o.AssignDriver(driverID)

		require.NoError(t, err)
		assert.Equal(t, order.DriverAssigned, o.Status())
		assert.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("should fail to assign before confirmation", func(t *testing.T) {
		o := createOrder(t)

		err := o.AssignDriver(driverID)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Requested, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("should fail to reassign", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()
		_ = o.AssignDriver(driverID)

		err := o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.True(t, o.Driver().IsEqual(driverID)) // original driver preserved
	})

	t.Run("should fail with invalid driver ID", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()
		var invalidID kernel.UUID

		err := o.AssignDriver(invalidID)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("should fail to assign cancelled order", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Cancel()

		err := o.AssignDriver(driverID)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderInFinalState)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should progress through the full lifecycle", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()
		_ = o.AssignDriver(kernel.NewUUID())

		for _, next := range []order.Status{
			order.PickedUp,
			order.InCleaning,
			order.OutForDelivery,
			order.Delivered,
		} {
			require.NoError(t, o.UpdateStatus(next))
			assert.Equal(t, next, o.Status())
		}

		assert.False(t, o.IsActive())
	})

	t.Run("should reject skipping a stage", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()

		err := o.UpdateStatus(order.InCleaning)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject any update on delivered order", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()
		_ = o.UpdateStatus(order.PickedUp)
		_ = o.UpdateStatus(order.InCleaning)
		_ = o.UpdateStatus(order.OutForDelivery)
		_ = o.UpdateStatus(order.Delivered)

		err := o.UpdateStatus(order.PickedUp)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderInFinalState)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel requested order", func(t *testing.T) {
		o := createOrder(t)

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("should cancel confirmed order", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail to cancel after pickup", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()
		_ = o.UpdateStatus(order.PickedUp)

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("should fail to cancel twice", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Cancel()

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderInFinalState)
	})
}

func TestOrder_FailPayment(t *testing.T) {
	t.Run("should fail payment on requested order", func(t *testing.T) {
		o := createOrder(t)

		err := o.FailPayment()

		require.NoError(t, err)
		assert.Equal(t, order.PaymentFailed, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("should reject payment failure after confirmation", func(t *testing.T) {
		o := createOrder(t)
		_ = o.Confirm()

		err := o.FailPayment()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		o := createOrder(t)

		items := o.Items()
		require.Len(t, items, 2)

		items[0] = order.Item{}

		assert.NoError(t, o.Items()[0].Validate())
	})
}
