package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreFrozen is returned when an item mutation is attempted after the
	// order has reached the Ready status. From that point on the kitchen has
	// committed to the order's contents and only status may change.
	ErrItemsAreFrozen = errors.New("order items can no longer change once the order is ready")
)

// Order represents one customer transaction. It is the aggregate root that
// manages the order lifecycle from placement through fulfillment, merging and
// completion or cancellation.
//
// Order maintains these invariants:
//   - the accumulated total equals the sum of its items' line totals after
//     every mutation;
//   - status transitions obey the Status state machine (no leaving terminal
//     states, no same-status no-ops);
//   - exactly one fulfillment location (table or address) is set;
//   - items are owned: they exist only inside one order's collection and move,
//     never copy, during a merge.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Instances must be created via NewOrder
// or, when loading from persistence, RestoreOrder.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID kernel.UUID

	// location is where the order is fulfilled: a table or an address
	location Location

	// status is the current state in the order lifecycle
	status Status

	// placedAt is the placement timestamp
	placedAt time.Time

	// notes is a free-text order note
	notes string

	// items is the owned, ordered collection of line items
	items []*OrderItem

	// total is the accumulated monetary total of all line items
	total kernel.Money

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Placed status with an empty item collection.
// Line items are added afterwards via AddItem, which keeps the total invariant
// as the collection grows.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the owning customer
//   - location: the fulfillment location (table or address)
//   - notes: free-text order note, may be empty
//   - placedAt: placement timestamp, must not be zero
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	location Location,
	notes string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// status, items and total. The total invariant is re-checked on the way in:
// a persisted total that disagrees with the sum of the persisted line totals
// indicates corruption and is rejected.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	location Location,
	status Status,
	placedAt time.Time,
	notes string,
	items []*OrderItem,
	total kernel.Money,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setPlacedAt(placedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.notes = notes
	o.items = items

	if !sumLineTotals(items).IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("persisted total %s does not equal sum of line totals %s",
				total, sumLineTotals(items)))
	}
	o.total = total

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Location returns the fulfillment location.
func (o *Order) Location() Location {
	return o.location
}

// TableID returns the table identifier and true when the order is table-bound.
func (o *Order) TableID() (kernel.UUID, bool) {
	return o.location.TableID()
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Notes returns the free-text order note.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order's line items. The returned slice is a copy; the
// items themselves are shared and must not be mutated by callers.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the accumulated monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// AddItem appends a line item to the order and updates the total.
//
// Item mutations are only allowed before fulfillment begins: once the order
// has reached Ready (or any later status), AddItem fails with ErrItemsAreFrozen.
func (o *Order) AddItem(item *OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if o.status.HasReached(Ready) || o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("orderItems", ErrItemsAreFrozen)
	}

	o.items = append(o.items, item)
	o.total = o.total.Add(item.LineTotal())
	return nil
}

// RemoveItem removes the line item with the given identifier and updates the
// total. The removed item is an orphan from this point on and the caller is
// expected to delete it from storage, not merely detach it.
//
// Fails with ObjectNotFoundError if no item with the identifier exists, and
// with ErrItemsAreFrozen under the same conditions as AddItem.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	if o.status.HasReached(Ready) || o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("orderItems", ErrItemsAreFrozen)
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.total = sumLineTotals(o.items)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

// ChangeStatus transitions the order to the target status, enforcing the
// Status state machine guards. The merge side effect on transition into
// Delivered is orchestrated by the application layer, not here.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled. Authorization (who may cancel
// what, and when) is the cancellation policy's concern; this method only
// enforces the state machine.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AbsorbItemsFrom transfers every line item of the candidate order into this
// order and adds the candidate's total to this order's total. The items move,
// they are not copied: after a successful absorb the candidate's collection is
// empty and its total is zero, so a candidate can be absorbed by at most one
// anchor.
//
// Both orders must belong to the same customer and the same table; the merge
// policy selects candidates accordingly, and this method re-checks it so a
// programming error cannot fold unrelated bills together.
func (o *Order) AbsorbItemsFrom(candidate *Order) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	if o.IsEqual(candidate) {
		return errs.NewValueIsInvalidErrorWithCause("mergeCandidate",
			errors.New("an order cannot absorb itself"))
	}

	if !o.customerID.IsEqual(candidate.customerID) {
		return errs.NewValueIsInvalidErrorWithCause("mergeCandidate",
			errors.New("candidate belongs to a different customer"))
	}

	anchorTable, ok := o.TableID()
	candidateTable, candidateOk := candidate.TableID()
	if !ok || !candidateOk || !anchorTable.IsEqual(candidateTable) {
		return errs.NewValueIsInvalidErrorWithCause("mergeCandidate",
			errors.New("orders are not bound to the same table"))
	}

	o.items = append(o.items, candidate.items...)
	o.total = o.total.Add(candidate.total)
	candidate.items = nil
	candidate.total = kernel.Money{}
	return nil
}

// ReassignTable moves a table-bound order to another table.
//
// Fails with ValueIsRequiredError when the order has no table at all (e.g. a
// delivery order) and with AlreadyHasValueError when the requested table is
// the one the order already occupies. Claiming and releasing the physical
// tables is coordinated by the application layer.
func (o *Order) ReassignTable(newTableID kernel.UUID) error {
	if err := newTableID.Validate(); err != nil {
		return err
	}

	currentTable, ok := o.TableID()
	if !ok {
		return errs.NewValueIsRequiredError("order has no table to reassign")
	}

	if currentTable.IsEqual(newTableID) {
		return errs.NewAlreadyHasValueError("tableId", newTableID.String())
	}

	location, err := NewTableLocation(newTableID)
	if err != nil {
		return err
	}

	o.location = location
	return nil
}

// sumLineTotals computes the invariant-defining sum over a set of items.
func sumLineTotals(items []*OrderItem) kernel.Money {
	var sum kernel.Money
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setLocation(location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
