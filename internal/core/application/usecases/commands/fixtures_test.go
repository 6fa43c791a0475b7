package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/model/timeslot"

	"github.com/stretchr/testify/require"
)

var scheduledDate = time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

func itemData(t *testing.T) []commands.ItemData {
	t.Helper()

	return []commands.ItemData{
		{ServiceID: kernel.NewUUID(), ServiceName: "Wash & Fold", Quantity: 2, UnitPrice: 1500},
		{ServiceID: kernel.NewUUID(), ServiceName: "Ironing", Quantity: 3, UnitPrice: 500},
	}
}

func createOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	pickup, err := kernel.NewLocation(30.0444, 31.2357)
	require.NoError(t, err)
	delivery, err := kernel.NewLocation(30.0626, 31.2497)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), scheduledDate,
		pickup, "12 Tahrir St, Cairo",
		delivery, "5 Nile Corniche, Cairo",
		itemData(t), payment.MethodCard, "",
	)
	require.NoError(t, err)
	return cmd
}

func requestedOrder(t *testing.T) *order.Order {
	t.Helper()

	pickup, err := kernel.NewLocation(30.0444, 31.2357)
	require.NoError(t, err)
	delivery, err := kernel.NewLocation(30.0626, 31.2497)
	require.NoError(t, err)

	price, err := kernel.NewMoney(1500, "EGP")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Wash & Fold", 2, price)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), scheduledDate,
		pickup, "12 Tahrir St, Cairo",
		delivery, "5 Nile Corniche, Cairo",
		[]order.Item{item}, payment.MethodCard,
	)
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := requestedOrder(t)
	require.NoError(t, o.Confirm())
	return o
}

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()

	location, err := kernel.NewLocation(30.0444, 31.2357)
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Hassan", "+201001234567", "Motorcycle - Cairo 1234", location)
	require.NoError(t, err)
	require.NoError(t, d.Approve())
	return d
}

func openSlot(t *testing.T, capacity int) *timeslot.TimeSlot {
	t.Helper()

	slot, err := timeslot.NewTimeSlot(kernel.NewUUID(), "Morning 09:00-12:00", "09:00", "12:00", capacity)
	require.NoError(t, err)
	return slot
}

func pendingPayment(t *testing.T, orderID kernel.UUID) *payment.Payment {
	t.Helper()

	amount, err := kernel.NewMoney(3000, "EGP")
	require.NoError(t, err)

	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), &orderID, amount, payment.MethodCard, "paymob")
	require.NoError(t, err)
	return p
}

func walletPayment(t *testing.T) *payment.Payment {
	t.Helper()

	amount, err := kernel.NewMoney(10000, "EGP")
	require.NoError(t, err)

	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), nil, amount, payment.MethodCard, "paymob")
	require.NoError(t, err)
	return p
}
