package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTableOccupancyQueryHandler builds the floor map read model.
// Active order counts come from a grouped join rather than per-table
// queries, keeping this a single round trip.
type GetTableOccupancyQueryHandler struct {
	db *gorm.DB
}

// NewGetTableOccupancyQueryHandler creates a handler for the floor map query.
// Requires a GORM database connection for query execution.
func NewGetTableOccupancyQueryHandler(db *gorm.DB) GetTableOccupancyQueryHandler {
	return GetTableOccupancyQueryHandler{db: db}
}

// Handle executes the query to retrieve every table with its occupancy.
// Results are sorted by table number.
func (h GetTableOccupancyQueryHandler) Handle(
	ctx context.Context,
	query GetTableOccupancyQuery,
) ([]GetTableOccupancyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetTableOccupancyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			t.capacity,
			t.status,
			COUNT(o.id) AS active_orders
		FROM dining_tables t
		LEFT JOIN orders o ON o.table_id = t.id AND o.status NOT IN (?, ?)
		GROUP BY t.id, t.number, t.capacity, t.status
		ORDER BY t.number
	`, order.Completed.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tableResp GetTableOccupancyQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&tableResp.Number,
			&tableResp.Capacity,
			&tableResp.Status,
			&tableResp.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		if tableResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		tables = append(tables, tableResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
