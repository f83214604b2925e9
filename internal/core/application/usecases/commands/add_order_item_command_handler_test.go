package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemUoW struct{ mock.Mock }

func (m *MockItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockItemUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testOrder := newDineInOrder(t, customerID, kernel.NewUUID(), time.Now().UTC(), 1599)

	tiramisu, err := catalog.NewFoodItem(kernel.NewUUID(), "Tiramisu", mustMoney(t, 650))
	require.NoError(t, err)

	cmd, err := commands.NewAddOrderItemCommand(testOrder.ID(), "Tiramisu", 2, "no cocoa")
	require.NoError(t, err)

	catalogReader := new(MockCatalogReader)
	catalogReader.On("FindFoodItemByName", ctx, "Tiramisu").Return(tiramisu, nil).Once()

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddOrderItemCommandHandler(factory, catalogReader)
	extended, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, extended.Items(), 2)
	assert.Equal(t, int64(1599+2*650), extended.Total().Cents())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	catalogReader.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_UnknownDish(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), "Unicorn Stew", 1, "")
	require.NoError(t, err)

	catalogReader := new(MockCatalogReader)
	catalogReader.On("FindFoodItemByName", ctx, "Unicorn Stew").
		Return(nil, errs.NewObjectNotFoundError("name", "Unicorn Stew")).Once()

	factory := new(MockItemUoWFactory)

	handler := commands.NewAddOrderItemCommandHandler(factory, catalogReader)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderItemCommandHandler_Handle_FrozenOrder(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testOrder := newDineInOrder(t, customerID, kernel.NewUUID(), time.Now().UTC(), 1599)
	require.NoError(t, testOrder.ChangeStatus(order.Ready))

	tiramisu, err := catalog.NewFoodItem(kernel.NewUUID(), "Tiramisu", mustMoney(t, 650))
	require.NoError(t, err)

	cmd, err := commands.NewAddOrderItemCommand(testOrder.ID(), "Tiramisu", 1, "")
	require.NoError(t, err)

	catalogReader := new(MockCatalogReader)
	catalogReader.On("FindFoodItemByName", ctx, "Tiramisu").Return(tiramisu, nil).Once()

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddOrderItemCommandHandler(factory, catalogReader)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Len(t, testOrder.Items(), 1)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestNewAddOrderItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), "", 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
