package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves orders through their lifecycle.
// Two side effects ride along with the plain status change:
//
//   - When a dine-in order reaches "Delivered", recent orders by the same
//     customer at the same table are folded into it so the sitting settles
//     as one bill (services.BillMerger decides eligibility).
//   - When an order reaches a terminal status and it was the last active
//     order at its table, the table is released back to available.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, publisher)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, "Delivered")
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory, publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Parses the requested status, applies the transition on the aggregate, runs
// the merge and table release side effects, and persists everything in one
// transaction. The updated order is returned.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, command UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	target, err := order.StatusFromString(command.StatusName())
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

	anchor, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = anchor.ChangeStatus(target); err != nil {
		return nil, err
	}

	var absorbed []*order.Order
	if target == order.Delivered {
		absorbed, err = h.mergeSitting(ctx, orderRepo, anchor)
		if err != nil {
			return nil, err
		}
	}

	// The anchor is updated before absorbed orders are deleted so that
	// transferred items are re-owned before their old parent rows go away.
	if err = orderRepo.Update(ctx, anchor); err != nil {
		return nil, err
	}

	for _, candidate := range absorbed {
		if err = orderRepo.Delete(ctx, candidate.ID()); err != nil {
			return nil, err
		}
	}

	if target.IsTerminal() {
		if err = releaseTableIfIdle(ctx, uow, anchor); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderEvent(ctx, ports.NewOrderEvent(anchor))

	return anchor, nil
}

func (h UpdateOrderStatusCommandHandler) mergeSitting(
	ctx context.Context, orderRepo ports.OrderRepository, anchor *order.Order,
) ([]*order.Order, error) {
	tableID, ok := anchor.TableID()
	if !ok {
		return nil, nil
	}

	merger := services.NewBillMerger()
	from, to := merger.CandidateWindow(anchor)

	candidates, err := orderRepo.FindMergeCandidates(
		ctx, anchor.CustomerID(), tableID, from, to, anchor.ID())
	if err != nil {
		return nil, err
	}

	return merger.Merge(anchor, candidates)
}

// releaseTableIfIdle frees the order's table when no other active order
// still references it. The finished order must already be persisted so the
// active count does not include it.
func releaseTableIfIdle(ctx context.Context, uow UoW, o *order.Order) error {
	tableID, ok := o.TableID()
	if !ok {
		return nil
	}

	active, err := uow.OrderRepository().CountActiveByTable(ctx, tableID)
	if err != nil {
		return err
	}
	if active > 0 {
		return nil
	}

	diningTable, err := uow.TableRepository().Get(ctx, tableID)
	if err != nil {
		return err
	}

	diningTable.Release()
	return uow.TableRepository().Update(ctx, diningTable)
}
