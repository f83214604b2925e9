package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

var ErrGetTableOccupancyQueryIsNotConstructed = errors.New(
	"GetTableOccupancyQuery must be created via NewGetTableOccupancyQuery constructor",
)

// GetTableOccupancyQuery retrieves the floor map: every dining table with
// its status and the number of active orders sitting at it.
//
// Example:
//
//	query := NewGetTableOccupancyQuery()
//	tables, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get occupancy: %w", err)
//	}
//	for _, tbl := range tables {
//	    fmt.Printf("table %d (%s): %d active orders\n", tbl.Number, tbl.Status, tbl.ActiveOrders)
//	}
type GetTableOccupancyQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetTableOccupancyQuery creates a query for the floor map.
// This is a parameterless query.
func NewGetTableOccupancyQuery() GetTableOccupancyQuery {
	return GetTableOccupancyQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTableOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrGetTableOccupancyQueryIsNotConstructed)
}

// GetTableOccupancyQueryResponse is one dining table in the floor map.
type GetTableOccupancyQueryResponse struct {
	ID           kernel.UUID
	Number       int
	Capacity     int
	Status       string
	ActiveOrders int64
}
