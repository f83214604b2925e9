package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidDineIn(t *testing.T) {
	customerID := kernel.NewUUID()
	tableNumber := 5
	lines := []commands.OrderLine{{FoodName: "Margherita", Quantity: 2}}

	cmd, err := commands.NewPlaceOrderCommand(customerID, &tableNumber, nil, lines, "no onions")
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, 5, *cmd.TableNumber())
	assert.Nil(t, cmd.AddressID())
	assert.Equal(t, lines, cmd.Lines())
	assert.Equal(t, "no onions", cmd.Notes())
}

func TestNewPlaceOrderCommand_ValidDelivery(t *testing.T) {
	customerID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	lines := []commands.OrderLine{{FoodName: "Pad Thai", Quantity: 1}}

	cmd, err := commands.NewPlaceOrderCommand(customerID, nil, &addressID, lines, "")
	require.NoError(t, err)
	assert.Nil(t, cmd.TableNumber())
	assert.Equal(t, addressID, *cmd.AddressID())
}

func TestNewPlaceOrderCommand_InvalidCustomerID(t *testing.T) {
	tableNumber := 5
	lines := []commands.OrderLine{{FoodName: "Margherita", Quantity: 1}}

	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, &tableNumber, nil, lines, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_NoDestination(t *testing.T) {
	lines := []commands.OrderLine{{FoodName: "Margherita", Quantity: 1}}

	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), nil, nil, lines, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, commands.ErrDestinationIsRequired.Error())
}

func TestNewPlaceOrderCommand_NoLines(t *testing.T) {
	tableNumber := 5

	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), &tableNumber, nil, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
