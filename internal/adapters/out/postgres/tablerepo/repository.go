package tablerepo

import (
	"context"
	"errors"
	"strconv"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableRepository creates a new GORM dining table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dining table to the database.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.DiningTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dining table to the database.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.DiningTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tableId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dining table by ID.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.DiningTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Seed inserts dining tables that are not present yet, keyed by number.
// Used by the composition root to lay out the floor on startup.
func (r *GormTableRepository) Seed(ctx context.Context, tables []*table.DiningTable) error {
	for _, aggregate := range tables {
		if err := aggregate.Validate(); err != nil {
			return err
		}

		dto := fromDomain(aggregate)
		err := r.db.WithContext(ctx).
			Where("number = ?", dto.Number).
			FirstOrCreate(&dto).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByNumber retrieves a dining table by its human-facing number.
func (r *GormTableRepository) GetByNumber(ctx context.Context, number int) (*table.DiningTable, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableNumber", strconv.Itoa(number))
		}
		return nil, err
	}

	return toDomain(dto)
}
