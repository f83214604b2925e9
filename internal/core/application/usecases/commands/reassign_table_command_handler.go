package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// ReassignTableCommandHandler moves a dine-in order to a different table.
// The old table is released, the new one claimed, all in one transaction.
// Delivery orders have no table to move and are rejected by the aggregate.
type ReassignTableCommandHandler struct {
	uowFactory UoWFactory
}

// NewReassignTableCommandHandler creates a handler for table reassignment.
func NewReassignTableCommandHandler(uowFactory UoWFactory) ReassignTableCommandHandler {
	return ReassignTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment command.
// Looks up the destination table by number, swaps the order's table
// reference and flips both tables' statuses. Reassigning to the table the
// order already sits at fails with an AlreadyHasValueError.
func (h ReassignTableCommandHandler) Handle(ctx context.Context, command ReassignTableCommand) (*order.Order, error) {
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
	tableRepo := uow.TableRepository()

	movedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	newTable, err := tableRepo.GetByNumber(ctx, command.NewTableNumber())
	if err != nil {
		return nil, err
	}

	oldTableID, hadTable := movedOrder.TableID()

	if err = movedOrder.ReassignTable(newTable.ID()); err != nil {
		return nil, err
	}

	if hadTable {
		oldTable, getErr := tableRepo.Get(ctx, oldTableID)
		if getErr != nil {
			return nil, getErr
		}

		oldTable.Release()
		if err = tableRepo.Update(ctx, oldTable); err != nil {
			return nil, err
		}
	}

	newTable.Claim()
	if err = tableRepo.Update(ctx, newTable); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, movedOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return movedOrder, nil
}
