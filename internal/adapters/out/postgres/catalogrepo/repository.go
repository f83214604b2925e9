package catalogrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements the CatalogReader port using GORM.
// Lookups run against the shared connection, not a unit of work: the catalog
// is read-only from the order flows' point of view.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog reader.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FindFoodItemByName resolves a menu entry by its exact name.
func (r *GormCatalogRepository) FindFoodItemByName(ctx context.Context, name string) (*catalog.FoodItem, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto FoodItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Seed inserts catalog entries that are not present yet, keyed by name.
// Used by the composition root to load the menu on startup.
func (r *GormCatalogRepository) Seed(ctx context.Context, items []*catalog.FoodItem) error {
	for _, item := range items {
		dto := fromDomain(item)

		err := r.db.WithContext(ctx).
			Where("name = ?", dto.Name).
			FirstOrCreate(&dto).Error
		if err != nil {
			return err
		}
	}

	return nil
}
