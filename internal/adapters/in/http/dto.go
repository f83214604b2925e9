package http

import (
	"fmt"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
)

// Request and response bodies for the REST surface. Hand-rolled rather than
// generated; the API is small and the shapes map one to one onto commands
// and query read models.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested line in a placement request.
type OrderLineRequest struct {
	FoodName string `json:"food_name"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// PlaceOrderRequest creates a new order. Exactly one of TableNumber and
// AddressID should be set.
type PlaceOrderRequest struct {
	CustomerID  string             `json:"customer_id"`
	TableNumber *int               `json:"table_number,omitempty"`
	AddressID   *string            `json:"address_id,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Lines       []OrderLineRequest `json:"lines"`
}

// UpdateOrderStatusRequest moves an order to a new lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest cancels an order on behalf of an actor.
type CancelOrderRequest struct {
	ActorID string `json:"actor_id"`
}

// ReassignTableRequest moves a dine-in order to another table.
type ReassignTableRequest struct {
	TableNumber int `json:"table_number"`
}

// AddOrderItemRequest appends a line to an existing order.
type AddOrderItemRequest struct {
	FoodName string `json:"food_name"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ID             string `json:"id"`
	FoodItemID     string `json:"food_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	Note           string `json:"note,omitempty"`
}

// OrderResponse is the full order representation returned by the write
// endpoints and the single-order query.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Status     string              `json:"status"`
	TableID    *string             `json:"table_id,omitempty"`
	AddressID  *string             `json:"address_id,omitempty"`
	PlacedAt   time.Time           `json:"placed_at"`
	Notes      string              `json:"notes,omitempty"`
	TotalCents int64               `json:"total_cents"`
	Total      string              `json:"total"`
	Items      []OrderItemResponse `json:"items"`
	Warnings   []string            `json:"warnings,omitempty"`
}

// ActiveOrderResponse is one entry of the in-flight order queue.
type ActiveOrderResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Status      string    `json:"status"`
	TableNumber *int      `json:"table_number,omitempty"`
	PlacedAt    time.Time `json:"placed_at"`
	TotalCents  int64     `json:"total_cents"`
}

// TableOccupancyResponse is one dining table in the floor map.
type TableOccupancyResponse struct {
	ID           string `json:"id"`
	Number       int    `json:"number"`
	Capacity     int    `json:"capacity"`
	Status       string `json:"status"`
	ActiveOrders int64  `json:"active_orders"`
}

func orderToResponse(o *order.Order, warnings []string) OrderResponse {
	var tableID, addressID *string
	if id, ok := o.Location().TableID(); ok {
		s := id.String()
		tableID = &s
	}
	if id, ok := o.Location().AddressID(); ok {
		s := id.String()
		addressID = &s
	}

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:             item.ID().String(),
			FoodItemID:     item.FoodItemID().String(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			Note:           item.Note(),
		})
	}

	return OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		TableID:    tableID,
		AddressID:  addressID,
		PlacedAt:   o.PlacedAt(),
		Notes:      o.Notes(),
		TotalCents: o.Total().Cents(),
		Total:      o.Total().String(),
		Items:      items,
		Warnings:   warnings,
	}
}

func queryOrderToResponse(detail queries.GetOrderQueryResponse) OrderResponse {
	var tableID, addressID *string
	if detail.TableID != nil {
		s := detail.TableID.String()
		tableID = &s
	}
	if detail.AddressID != nil {
		s := detail.AddressID.String()
		addressID = &s
	}

	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemResponse{
			ID:             item.ID.String(),
			FoodItemID:     item.FoodItemID.String(),
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			Note:           item.Note,
		})
	}

	return OrderResponse{
		ID:         detail.ID.String(),
		CustomerID: detail.CustomerID.String(),
		Status:     detail.Status,
		TableID:    tableID,
		AddressID:  addressID,
		PlacedAt:   detail.PlacedAt,
		Notes:      detail.Notes,
		TotalCents: detail.TotalCents,
		Total:      fmt.Sprintf("%d.%02d", detail.TotalCents/100, detail.TotalCents%100),
		Items:      items,
	}
}
