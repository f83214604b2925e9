// Package ports defines repository and collaborator interfaces for the
// restaurant domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for dining tables.
// The engine mutates only the occupancy status through it; table creation and
// deletion belong to catalog management, which shares this contract's Add.
type TableRepository interface {
	// Add persists a new dining table.
	Add(ctx context.Context, aggregate *table.DiningTable) error

	// Update persists changes to an existing dining table.
	Update(ctx context.Context, aggregate *table.DiningTable) error

	// Get retrieves a dining table by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.DiningTable, error)

	// GetByNumber retrieves a dining table by its human-facing table number.
	// Placement and reassignment requests identify tables by number.
	GetByNumber(ctx context.Context, number int) (*table.DiningTable, error)
}
