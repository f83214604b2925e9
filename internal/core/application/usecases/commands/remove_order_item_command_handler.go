package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// RemoveOrderItemCommandHandler strikes a line from an existing order.
// The aggregate recomputes the running total and rejects removals once the
// order has reached "Ready" or a terminal status.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order lines.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command and returns the updated order.
// Removing a line the order does not have fails with an ObjectNotFoundError.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, command RemoveOrderItemCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	shortenedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = shortenedOrder.RemoveItem(command.ItemID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, shortenedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shortenedOrder, nil
}
