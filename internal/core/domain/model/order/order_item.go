package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem or RestoreOrderItem factory functions.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one catalog item within an order: a food item reference, the
// unit price snapshotted at order time, a quantity and a free-text note.
//
// The unit price is captured when the item is created and never changes
// afterwards, even if the catalog price later does. The line total is always
// unit price times quantity.
//
// OrderItem is owned by its Order: deleting the order deletes its items, and
// removing an item from the order's collection deletes the item rather than
// detaching it (orphan-removal semantics, enforced by the engine's add/remove
// operations and the persistence adapter).
type OrderItem struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// foodItemID references the catalog entry this line was resolved from
	foodItemID kernel.UUID

	// name is the catalog item name snapshotted at order time, for billing
	name string

	// unitPrice is the catalog price snapshotted at order time
	unitPrice kernel.Money

	// quantity is the number of units ordered (always positive)
	quantity int

	// note is a free-text per-item note ("no onions")
	note string

	// guard ensures the item was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOrderItem creates an OrderItem with validation.
//
// The quantity must be positive; the check runs at construction so no order
// can carry a zero or negative line.
func NewOrderItem(
	id kernel.UUID,
	foodItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	note string,
) (*OrderItem, error) {
	item := &OrderItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setFoodItemID(foodItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	item.note = note
	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistent storage.
// It applies the same validation as NewOrderItem; persisted rows that fail it
// indicate corruption rather than a caller error.
func RestoreOrderItem(
	id kernel.UUID,
	foodItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	note string,
) (*OrderItem, error) {
	return NewOrderItem(id, foodItemID, name, unitPrice, quantity, note)
}

// Validate ensures the OrderItem was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// FoodItemID returns the referenced catalog entry's identifier.
func (i *OrderItem) FoodItemID() kernel.UUID {
	return i.foodItemID
}

// Name returns the catalog item name snapshotted at order time.
func (i *OrderItem) Name() string {
	return i.name
}

// UnitPrice returns the price snapshotted at order time.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Note returns the free-text per-item note.
func (i *OrderItem) Note() string {
	return i.note
}

// LineTotal returns unit price times quantity.
func (i *OrderItem) LineTotal() kernel.Money {
	return i.unitPrice.MultiplyBy(i.quantity)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setFoodItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.foodItemID = id
	return nil
}

func (i *OrderItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
