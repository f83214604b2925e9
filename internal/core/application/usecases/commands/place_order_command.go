package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("either a table number or an address must be provided")
)

// OrderLine is a single requested line in a placement request.
// FoodName is matched against the menu catalog during handling.
type OrderLine struct {
	FoodName string
	Quantity int
	Note     string
}

// PlaceOrderCommand represents a request to place a new restaurant order.
// The order is either tied to a dining table (dine-in) or to a saved
// address (delivery), never both. When both are supplied the table wins.
//
// Example:
//
//	table := 5
//	cmd, err := NewPlaceOrderCommand(customerID, &table, nil,
//	    []OrderLine{{FoodName: "Margherita", Quantity: 2}}, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed, warnings: %v", result.Order.ID(), result.Warnings)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	tableNumber *int
	addressID   *kernel.UUID
	lines       []OrderLine
	notes       string

	guard kernel.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the customer ID is valid, at least one destination is
// given and at least one order line is requested.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	tableNumber *int,
	addressID *kernel.UUID,
	lines []OrderLine,
	notes string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setCustomerID(customerID),
		placeCommand.setDestination(tableNumber, addressID),
		placeCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	placeCommand.notes = notes
	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TableNumber returns the requested dining table number, if any.
func (c PlaceOrderCommand) TableNumber() *int {
	return c.tableNumber
}

// AddressID returns the requested delivery address ID, if any.
func (c PlaceOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Notes returns the free-form note attached to the whole order.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setDestination(tableNumber *int, addressID *kernel.UUID) error {
	if tableNumber == nil && addressID == nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", ErrDestinationIsRequired)
	}

	if addressID != nil {
		if err := addressID.Validate(); err != nil {
			return err
		}
	}

	c.tableNumber = tableNumber
	c.addressID = addressID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("orderLines")
	}

	c.lines = lines
	return nil
}
