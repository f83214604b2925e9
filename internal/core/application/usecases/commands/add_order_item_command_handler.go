package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// AddOrderItemCommandHandler appends a line to an existing order.
// The dish is resolved against the catalog and its current name and price
// are snapshotted into the line. Orders that have reached "Ready" no longer
// accept item changes; the aggregate rejects those.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(
	uowFactory OrderUoWFactory, catalog ports.CatalogReader,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add-item command and returns the updated order.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, command AddOrderItemCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	foodItem, err := h.catalog.FindFoodItemByName(ctx, command.FoodName())
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

	extendedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	item, err := order.NewOrderItem(
		kernel.NewUUID(), foodItem.ID(), foodItem.Name(), foodItem.Price(), command.Quantity(), command.Note())
	if err != nil {
		return nil, err
	}

	if err = extendedOrder.AddItem(item); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, extendedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return extendedOrder, nil
}
