package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// OrderEvent describes a change of an order's lifecycle status, published to
// the notification boundary after the change is committed.
type OrderEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewOrderEvent snapshots the current state of an order for publishing.
func NewOrderEvent(o *order.Order) OrderEvent {
	return OrderEvent{
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		TotalCents: o.Total().Cents(),
		OccurredAt: time.Now().UTC(),
	}
}

// OrderEventPublisher is the notification boundary of the engine: rendered
// responses, customer notifications and kitchen displays all hang off these
// events. Publishing is best-effort; a failed publish never rolls back the
// committed state change.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
