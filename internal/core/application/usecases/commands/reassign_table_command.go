package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrReassignTableCommandIsNotConstructed = errors.New(
	"ReassignTableCommand must be created via NewReassignTableCommand constructor",
)

// ReassignTableCommand represents a request to move a dine-in order to a
// different table, e.g. when a party is reseated mid-service.
type ReassignTableCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	newTableNumber int

	guard kernel.ConstructorGuard
}

// NewReassignTableCommand creates a command to move an order to another table.
// Validates that the order ID is valid and the table number is positive.
func NewReassignTableCommand(orderID kernel.UUID, newTableNumber int) (ReassignTableCommand, error) {
	reassignCommand := ReassignTableCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		reassignCommand.setOrderID(orderID),
		reassignCommand.setNewTableNumber(newTableNumber),
	); err != nil {
		return ReassignTableCommand{}, err
	}

	return reassignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignTableCommand) Validate() error {
	return c.guard.Validate(ErrReassignTableCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c ReassignTableCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewTableNumber returns the number of the destination table.
func (c ReassignTableCommand) NewTableNumber() int {
	return c.newTableNumber
}

func (c *ReassignTableCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignTableCommand) setNewTableNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("tableNumber")
	}

	c.newTableNumber = number
	return nil
}
