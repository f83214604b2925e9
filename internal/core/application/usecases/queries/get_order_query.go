// Package queries contains read-only operations over the storage layer.
// Query handlers bypass the domain model and read projections straight from
// the database, keeping the write path free of read concerns.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
// When a requesting customer is set, the lookup is scoped to that customer:
// someone else's order answers exactly like a missing one.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, &customerID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s: %d items, %d cents\n", detail.ID, len(detail.Items), detail.TotalCents)
type GetOrderQuery struct {
	orderID              kernel.UUID
	requestingCustomerID *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. Pass a nil customer ID for
// staff lookups that are not scoped to an owner.
func NewGetOrderQuery(orderID kernel.UUID, requestingCustomerID *kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	if requestingCustomerID != nil {
		if err := requestingCustomerID.Validate(); err != nil {
			return GetOrderQuery{}, err
		}
	}

	return GetOrderQuery{
		orderID:              orderID,
		requestingCustomerID: requestingCustomerID,
		guard:                kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequestingCustomerID returns the owner scope of the lookup, if any.
func (q GetOrderQuery) RequestingCustomerID() *kernel.UUID {
	return q.requestingCustomerID
}

// GetOrderItemResponse is one line of the order read model.
type GetOrderItemResponse struct {
	ID             kernel.UUID
	FoodItemID     kernel.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
	Note           string
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	TableID    *kernel.UUID
	AddressID  *kernel.UUID
	PlacedAt   time.Time
	Notes      string
	TotalCents int64
	Items      []GetOrderItemResponse
}
