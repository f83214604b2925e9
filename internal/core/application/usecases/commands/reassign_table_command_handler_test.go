package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReassignTableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	oldTable, err := table.NewDiningTable(kernel.NewUUID(), 1, 4)
	require.NoError(t, err)
	oldTable.Claim()

	newTable, err := table.NewDiningTable(kernel.NewUUID(), 2, 6)
	require.NoError(t, err)

	customerID := kernel.NewUUID()
	testOrder := newDineInOrder(t, customerID, oldTable.ID(), time.Now().UTC(), 1599)

	cmd, err := commands.NewReassignTableCommand(testOrder.ID(), 2)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	tableRepo := new(MockStatusTableRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		tableRepo.On("GetByNumber", ctx, 2).Return(newTable, nil).Once(),
		tableRepo.On("Get", ctx, oldTable.ID()).Return(oldTable, nil).Once(),
		tableRepo.On("Update", ctx, oldTable).Return(nil).Once(),
		tableRepo.On("Update", ctx, newTable).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignTableCommandHandler(factory)
	moved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, oldTable.IsOccupied())
	assert.True(t, newTable.IsOccupied())

	tableID, ok := moved.TableID()
	require.True(t, ok)
	assert.Equal(t, newTable.ID(), tableID)

	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReassignTableCommandHandler_Handle_SameTableRejected(t *testing.T) {
	ctx := t.Context()

	diningTable, err := table.NewDiningTable(kernel.NewUUID(), 1, 4)
	require.NoError(t, err)
	diningTable.Claim()

	customerID := kernel.NewUUID()
	testOrder := newDineInOrder(t, customerID, diningTable.ID(), time.Now().UTC(), 1599)

	cmd, err := commands.NewReassignTableCommand(testOrder.ID(), 1)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	tableRepo := new(MockStatusTableRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		tableRepo.On("GetByNumber", ctx, 1).Return(diningTable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignTableCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAlreadyHasValue)
	assert.True(t, diningTable.IsOccupied())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestReassignTableCommandHandler_Handle_DeliveryOrderRejected(t *testing.T) {
	ctx := t.Context()

	newTable, err := table.NewDiningTable(kernel.NewUUID(), 2, 6)
	require.NoError(t, err)

	location, err := order.NewAddressLocation(kernel.NewUUID())
	require.NoError(t, err)
	deliveryOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), location, "", time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewReassignTableCommand(deliveryOrder.ID(), 2)
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	tableRepo := new(MockStatusTableRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		orderRepo.On("Get", ctx, deliveryOrder.ID()).Return(deliveryOrder, nil).Once(),
		tableRepo.On("GetByNumber", ctx, 2).Return(newTable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReassignTableCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.False(t, newTable.IsOccupied())
}

func TestNewReassignTableCommand_InvalidNumber(t *testing.T) {
	_, err := commands.NewReassignTableCommand(kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
