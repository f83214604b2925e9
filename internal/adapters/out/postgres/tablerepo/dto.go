// Package tablerepo provides data transfer objects and mapping functions for dining table persistence.
// This package implements the repository pattern for the dining table domain aggregate, handling
// the conversion between domain entities and database representations.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting dining table aggregates.
// The human-facing table number is unique within the restaurant.
type TableDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number   int       `gorm:"type:int;not null;uniqueIndex"`
	Capacity int       `gorm:"type:int;not null"`
	Status   string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for dining table entities.
// Overrides GORM's default naming convention to use "dining_tables".
func (TableDTO) TableName() string {
	return "dining_tables"
}

// fromDomain converts a dining table domain aggregate to its database representation.
func fromDomain(t *table.DiningTable) TableDTO {
	return TableDTO{
		ID:       t.ID().Bytes(),
		Number:   t.Number(),
		Capacity: t.Capacity(),
		Status:   t.Status().String(),
	}
}

// toDomain converts a database DTO to a dining table domain aggregate.
func toDomain(dto TableDTO) (*table.DiningTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := table.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return table.RestoreDiningTable(id, dto.Number, dto.Capacity, status)
}
