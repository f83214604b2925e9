// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Exactly one of TableID and AddressID is set, mirroring the order's
// fulfillment location. Status is stored by name so that ad hoc queries stay
// readable.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	TableID    *uuid.UUID     `gorm:"type:uuid;index"`
	AddressID  *uuid.UUID     `gorm:"type:uuid"`
	Status     string         `gorm:"type:varchar(32);not null;index"`
	PlacedAt   time.Time      `gorm:"not null;index"`
	Notes      string         `gorm:"type:text"`
	TotalCents int64          `gorm:"not null"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// Name and unit price are denormalized snapshots taken at ordering time, not
// references into the catalog.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodItemID     uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	UnitPriceCents int64     `gorm:"not null"`
	Quantity       int       `gorm:"type:int;not null"`
	Note           string    `gorm:"type:text"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the location variant onto the nullable table and address columns.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var tableID, addressID *uuid.UUID
	if id, ok := o.Location().TableID(); ok {
		raw := id.Bytes()
		tableID = &raw
	}
	if id, ok := o.Location().AddressID(); ok {
		raw := id.Bytes()
		addressID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        orderID,
			FoodItemID:     item.FoodItemID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			Note:           item.Note(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().Bytes(),
		TableID:    tableID,
		AddressID:  addressID,
		Status:     o.Status().String(),
		PlacedAt:   o.PlacedAt(),
		Notes:      o.Notes(),
		TotalCents: o.Total().Cents(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and total using RestoreOrder,
// which re-validates the persisted total against the line totals.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	location, err := locationToDomain(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, location, status, dto.PlacedAt, dto.Notes, items, total)
}

func locationToDomain(dto OrderDTO) (order.Location, error) {
	if dto.TableID != nil {
		tableID, err := kernel.UUIDFromBytes((*dto.TableID)[:])
		if err != nil {
			return order.Location{}, err
		}
		return order.NewTableLocation(tableID)
	}

	var addressID kernel.UUID
	if dto.AddressID != nil {
		id, err := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if err != nil {
			return order.Location{}, err
		}
		addressID = id
	}

	return order.NewAddressLocation(addressID)
}

// itemToDomain converts an order item DTO to its domain entity.
// Uses RestoreOrderItem to reconstruct the entity with its persisted state.
func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, foodItemID, dto.Name, unitPrice, dto.Quantity, dto.Note)
}
