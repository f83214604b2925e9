package orderrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. Items are written with
// FullSaveAssociations, which re-owns lines transferred in from a merged
// order; rows for items removed from the aggregate are deleted afterwards.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	// Orphan removal: drop item rows that no longer belong to the aggregate.
	keep := make([]any, 0, len(dto.Items))
	for _, item := range dto.Items {
		keep = append(keep, item.ID)
	}

	tx := r.db.WithContext(ctx).Where("order_id = ?", dto.ID)
	if len(keep) > 0 {
		tx = tx.Where("id NOT IN ?", keep)
	}
	if err := tx.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and, through the cascade, its items.
// Deleting an order that does not exist is not an error; merge cleanup may
// race with other deletions.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error
}

// FindMergeCandidates retrieves non-terminal orders of the customer at the
// table placed within [from, to], excluding the anchor itself.
func (r *GormOrderRepository) FindMergeCandidates(
	ctx context.Context,
	customerID kernel.UUID,
	tableID kernel.UUID,
	from time.Time,
	to time.Time,
	exclude kernel.UUID,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID.Bytes()).
		Where("table_id = ?", tableID.Bytes()).
		Where("status NOT IN (?, ?)", order.Completed.String(), order.Cancelled.String()).
		Where("placed_at BETWEEN ? AND ?", from, to).
		Where("id <> ?", exclude.Bytes()).
		Order("placed_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountActiveByTable returns how many non-terminal orders reference the table.
func (r *GormOrderRepository) CountActiveByTable(ctx context.Context, tableID kernel.UUID) (int64, error) {
	if err := tableID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("table_id = ?", tableID.Bytes()).
		Where("status NOT IN (?, ?)", order.Completed.String(), order.Cancelled.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
