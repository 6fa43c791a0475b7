package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/application"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyToOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := confirmedOrder(t)
	d := availableDriver(t)
	cmd, err := commands.NewApplyToOrderCommand(kernel.NewUUID(), o.ID(), d.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	appRepo := new(MockApplicationRepository)
	uow := new(MockApplicationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		appRepo.On("GetAllByOrderAndDriver", mock.Anything, o.ID(), d.ID()).
			Return([]*application.Application{}, nil).Once(),
		appRepo.On("Add", mock.Anything, mock.AnythingOfType("*application.Application")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyToOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	appRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApplyToOrderCommandHandler_Handle_DuplicateApplication(t *testing.T) {
	ctx := t.Context()
	o := confirmedOrder(t)
	d := availableDriver(t)
	cmd, _ := commands.NewApplyToOrderCommand(kernel.NewUUID(), o.ID(), d.ID())

	pending, err := application.NewApplication(kernel.NewUUID(), o.ID(), d.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	appRepo := new(MockApplicationRepository)
	uow := new(MockApplicationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("ApplicationRepository").Return(appRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	appRepo.On("GetAllByOrderAndDriver", mock.Anything, o.ID(), d.ID()).
		Return([]*application.Application{pending}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyToOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDriverAlreadyApplied)
	appRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestApplyToOrderCommandHandler_Handle_RejectionCooldown(t *testing.T) {
	ctx := t.Context()
	o := confirmedOrder(t)
	d := availableDriver(t)
	cmd, _ := commands.NewApplyToOrderCommand(kernel.NewUUID(), o.ID(), d.ID())

	// Rejected ten days ago: still inside the cooldown.
	decidedAt := time.Now().UTC().Add(-10 * 24 * time.Hour)
	rejected, err := application.RestoreApplication(
		kernel.NewUUID(), o.ID(), d.ID(),
		application.Rejected, decidedAt.Add(-time.Hour), &decidedAt, 1,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	appRepo := new(MockApplicationRepository)
	uow := new(MockApplicationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("ApplicationRepository").Return(appRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	appRepo.On("GetAllByOrderAndDriver", mock.Anything, o.ID(), d.ID()).
		Return([]*application.Application{rejected}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyToOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, application.ErrRejectionCooldownActive)
	appRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestApplyToOrderCommandHandler_Handle_CooldownExpired(t *testing.T) {
	ctx := t.Context()
	o := confirmedOrder(t)
	d := availableDriver(t)
	cmd, _ := commands.NewApplyToOrderCommand(kernel.NewUUID(), o.ID(), d.ID())

	// Rejected well past the cooldown: free to apply again.
	decidedAt := time.Now().UTC().Add(-application.RejectionCooldown - 24*time.Hour)
	rejected, err := application.RestoreApplication(
		kernel.NewUUID(), o.ID(), d.ID(),
		application.Rejected, decidedAt.Add(-time.Hour), &decidedAt, 1,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	appRepo := new(MockApplicationRepository)
	uow := new(MockApplicationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("ApplicationRepository").Return(appRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	appRepo.On("GetAllByOrderAndDriver", mock.Anything, o.ID(), d.ID()).
		Return([]*application.Application{rejected}, nil).Once()
	appRepo.On("Add", mock.Anything, mock.AnythingOfType("*application.Application")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyToOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	appRepo.AssertExpectations(t)
}

func TestApplyToOrderCommandHandler_Handle_OrderNotAssignable(t *testing.T) {
	ctx := t.Context()
	o := requestedOrder(t) // not yet confirmed
	d := availableDriver(t)
	cmd, _ := commands.NewApplyToOrderCommand(kernel.NewUUID(), o.ID(), d.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockApplicationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(new(MockDriverRepository)).Once()
	uow.On("ApplicationRepository").Return(new(MockApplicationRepository)).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyToOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
}

func TestApplyToOrderCommandHandler_Handle_DriverCannotWork(t *testing.T) {
	ctx := t.Context()
	o := confirmedOrder(t)
	d := availableDriver(t)
	require.NoError(t, d.GoOffline())
	cmd, _ := commands.NewApplyToOrderCommand(kernel.NewUUID(), o.ID(), d.ID())

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockApplicationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("ApplicationRepository").Return(new(MockApplicationRepository)).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	driverRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyToOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, driver.ErrDriverNotAvailable)
}

func TestApplyToOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApplyToOrderCommand{} // not constructed properly
	h := commands.NewApplyToOrderCommandHandler(new(MockApplicationUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
