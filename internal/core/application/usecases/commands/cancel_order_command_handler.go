package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation requests.
// The acting user is resolved first and then run through the cancellation
// policy: staff may cancel at any point, customers only their own orders
// and only before the kitchen finishes. A customer probing someone else's
// order gets the same "not found" answer as for a nonexistent one.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, accounts, publisher)
//	cmd, _ := NewCancelOrderCommand(orderID, actorID)
//	cancelled, err := handler.Handle(ctx, cmd)
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	accounts   ports.AccountReader
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory, accounts ports.AccountReader, publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		accounts:   accounts,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// On success the order ends in "Cancelled" status and, if it was the last
// active order at its table, the table is released.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	actor, err := h.accounts.GetActor(ctx, command.ActorID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cancelledOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = services.NewCancellationPolicy().Authorize(actor, cancelledOrder); err != nil {
		return nil, err
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return nil, err
	}

	if err = releaseTableIfIdle(ctx, uow, cancelledOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderEvent(ctx, ports.NewOrderEvent(cancelledOrder))

	return cancelledOrder, nil
}
