package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their owned line items: Add and Update
// persist the whole aggregate as one unit, and Delete cascades to the items.
type OrderRepository interface {
	// Add persists a new order aggregate, items included.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Items removed
	// from the aggregate's collection since it was loaded are deleted from
	// storage (orphan-removal), and items that moved in (merge) are re-owned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// complete item collection.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and all of its items. Used when a merge
	// absorbs a candidate order: after its items transfer to the anchor,
	// the emptied order must no longer be retrievable.
	Delete(ctx context.Context, id kernel.UUID) error

	// FindMergeCandidates retrieves orders of the given customer at the given
	// table whose placement time lies in [from, to] and whose status is not
	// terminal, excluding the order identified by exclude (the anchor).
	FindMergeCandidates(
		ctx context.Context,
		customerID kernel.UUID,
		tableID kernel.UUID,
		from time.Time,
		to time.Time,
		exclude kernel.UUID,
	) ([]*order.Order, error)

	// CountActiveByTable returns how many orders in a non-terminal status
	// currently reference the given table. Used to decide whether a table
	// can be released when an order reaches a terminal state.
	CountActiveByTable(ctx context.Context, tableID kernel.UUID) (int64, error)
}
