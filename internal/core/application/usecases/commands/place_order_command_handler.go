package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

var ErrNoLinesResolved = errors.New("none of the requested items exist in the catalog")

// PlaceOrderResult carries the placed order together with the names of
// requested items that could not be matched against the catalog.
type PlaceOrderResult struct {
	Order    *order.Order
	Warnings []string
}

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves each requested line against the menu catalog, snapshots the
// current name and price into the order, and claims the dining table for
// dine-in orders. Lines naming unknown dishes are skipped and reported as
// warnings; the placement only fails when no line resolves at all.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, accounts, addresses, catalog, publisher)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, name := range result.Warnings {
//	    log.Printf("unknown dish skipped: %s", name)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	accounts   ports.AccountReader
	addresses  ports.AddressReader
	catalog    ports.CatalogReader
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	accounts ports.AccountReader,
	addresses ports.AddressReader,
	catalog ports.CatalogReader,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		accounts:   accounts,
		addresses:  addresses,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// The new order starts in "Placed" status. For dine-in orders the table is
// looked up by number and marked occupied within the same transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := command.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	customer, err := h.accounts.GetActor(ctx, command.CustomerID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	location, claimedTable, err := h.resolveDestination(ctx, uow, command)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), customer.ID(), location, command.Notes(), time.Now().UTC())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	warnings, err := h.fillLines(ctx, newOrder, command.Lines())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if len(newOrder.Items()) == 0 {
		return PlaceOrderResult{}, errs.NewValueIsInvalidErrorWithCause("orderLines", ErrNoLinesResolved)
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlaceOrderResult{}, err
	}

	if claimedTable != nil {
		claimedTable.Claim()
		if err = uow.TableRepository().Update(ctx, claimedTable); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	// Event delivery is best effort; the producer reports failures itself.
	_ = h.publisher.PublishOrderEvent(ctx, ports.NewOrderEvent(newOrder))

	return PlaceOrderResult{Order: newOrder, Warnings: warnings}, nil
}

func (h PlaceOrderCommandHandler) resolveDestination(
	ctx context.Context, uow UoW, command PlaceOrderCommand,
) (order.Location, *table.DiningTable, error) {
	if command.TableNumber() != nil {
		diningTable, err := uow.TableRepository().GetByNumber(ctx, *command.TableNumber())
		if err != nil {
			return order.Location{}, nil, err
		}

		location, err := order.NewTableLocation(diningTable.ID())
		if err != nil {
			return order.Location{}, nil, err
		}
		return location, diningTable, nil
	}

	address, err := h.addresses.GetAddress(ctx, *command.AddressID())
	if err != nil {
		return order.Location{}, nil, err
	}

	location, err := order.NewAddressLocation(address.ID())
	if err != nil {
		return order.Location{}, nil, err
	}
	return location, nil, nil
}

func (h PlaceOrderCommandHandler) fillLines(
	ctx context.Context, newOrder *order.Order, lines []OrderLine,
) ([]string, error) {
	var warnings []string

	for _, line := range lines {
		foodItem, err := h.catalog.FindFoodItemByName(ctx, line.FoodName)
		if errors.Is(err, errs.ErrObjectNotFound) {
			warnings = append(warnings, line.FoodName)
			continue
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(
			kernel.NewUUID(), foodItem.ID(), foodItem.Name(), foodItem.Price(), line.Quantity, line.Note)
		if err != nil {
			return nil, err
		}

		if err = newOrder.AddItem(item); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}
