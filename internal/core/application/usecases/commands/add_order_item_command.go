package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add one more line to an
// existing order, e.g. a dessert ordered after the mains. Unlike placement,
// an unknown dish name here is a hard error, not a warning.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	foodName string
	quantity int
	note     string

	guard kernel.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to append a line to an order.
// Validates that the order ID is valid, the dish name is not empty and the
// quantity is positive.
func NewAddOrderItemCommand(orderID kernel.UUID, foodName string, quantity int, note string) (AddOrderItemCommand, error) {
	itemCommand := AddOrderItemCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setFoodName(foodName),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	itemCommand.note = note
	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FoodName returns the requested dish name.
func (c AddOrderItemCommand) FoodName() string {
	return c.foodName
}

// Quantity returns how many units of the dish are requested.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// Note returns the free-form instruction for this line.
func (c AddOrderItemCommand) Note() string {
	return c.note
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setFoodName(foodName string) error {
	if foodName == "" {
		return errs.NewValueIsRequiredError("foodName")
	}

	c.foodName = foodName
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
