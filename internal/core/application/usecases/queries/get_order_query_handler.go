package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items from the database.
// The ownership scope is folded into the SQL so that a foreign order and a
// nonexistent order are indistinguishable to the caller.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the order does not exist or is owned
// by a different customer than the one requesting it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	where := `WHERE id = ?`
	args := []any{query.OrderID().String()}
	if query.RequestingCustomerID() != nil {
		where += ` AND customer_id = ?`
		args = append(args, query.RequestingCustomerID().String())
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			table_id,
			address_id,
			placed_at,
			notes,
			total_cents
		FROM orders
		`+where, args...).Row()

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var tableID, addressID sql.Null[uuid.UUID]

	err := row.Scan(
		&id,
		&customerID,
		&resp.Status,
		&tableID,
		&addressID,
		&resp.PlacedAt,
		&resp.Notes,
		&resp.TotalCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TableID, err = optionalUUID(tableID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.AddressID, err = optionalUUID(addressID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, resp.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			food_item_id,
			name,
			unit_price_cents,
			quantity,
			note
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var id, foodItemID uuid.UUID

		err = rows.Scan(
			&id,
			&foodItemID,
			&item.Name,
			&item.UnitPriceCents,
			&item.Quantity,
			&item.Note,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.FoodItemID, err = kernel.UUIDFromBytes(foodItemID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func optionalUUID(v sql.Null[uuid.UUID]) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(v.V[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
