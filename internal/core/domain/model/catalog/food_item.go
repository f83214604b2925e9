// Package catalog provides the read-side domain type for catalog entries.
// Catalog management (categories, menus, food item CRUD, images) is an
// external collaborator; the engine only looks food items up by name during
// order placement and snapshots their price onto order items.
package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrFoodItemIsNotConstructed is returned when a FoodItem instance was not
// created through the NewFoodItem factory function.
var ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")

// FoodItem is a purchasable catalog entry: a name and its current price.
type FoodItem struct {
	// id is the unique identifier for the catalog entry
	id kernel.UUID

	// name is the unique, human-facing item name orders are placed against
	name string

	// price is the current catalog price
	price kernel.Money
}

// NewFoodItem creates a FoodItem with validation.
func NewFoodItem(id kernel.UUID, name string, price kernel.Money) (*FoodItem, error) {
	f := &FoodItem{}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
	); err != nil {
		return nil, err
	}

	f.price = price
	return f, nil
}

// ID returns the catalog entry's unique identifier.
func (f *FoodItem) ID() kernel.UUID {
	return f.id
}

// Name returns the human-facing item name.
func (f *FoodItem) Name() string {
	return f.name
}

// Price returns the current catalog price.
func (f *FoodItem) Price() kernel.Money {
	return f.price
}

func (f *FoodItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *FoodItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}
