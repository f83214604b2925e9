// Package catalogrepo provides read access to the menu catalog.
// The catalog is owned by a separate management surface; the order flows
// only ever resolve dishes from it, so this package implements just the
// CatalogReader port plus the seeding hook used at startup.
package catalogrepo

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FoodItemDTO represents the database structure for menu catalog entries.
type FoodItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PriceCents int64     `gorm:"not null"`
}

// TableName specifies the database table name for catalog entries.
// Overrides GORM's default naming convention to use "food_items".
func (FoodItemDTO) TableName() string {
	return "food_items"
}

func fromDomain(f *catalog.FoodItem) FoodItemDTO {
	return FoodItemDTO{
		ID:         f.ID().Bytes(),
		Name:       f.Name(),
		PriceCents: f.Price().Cents(),
	}
}

func toDomain(dto FoodItemDTO) (*catalog.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return catalog.NewFoodItem(id, dto.Name, price)
}
