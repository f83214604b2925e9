package table

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrDiningTableIsNotConstructed is returned when a DiningTable instance was
// not created through the NewDiningTable or RestoreDiningTable factory
// functions.
var ErrDiningTableIsNotConstructed = errors.New(
	"DiningTable must be created via NewDiningTable constructor")

// DiningTable represents a physical seating unit.
//
// A table carries a unique human-facing number, a seating capacity, and an
// occupancy status. Within the order lifecycle flows, the status field is
// mutated exclusively through Claim and Release, invoked by the engine as
// side effects of order activity: placement and reassignment claim, release
// happens on reassignment away and when an order reaches a terminal state
// with no other active order still at the table.
//
// A table may accumulate several orders over one sitting, so claiming an
// already occupied table is a valid no-op rather than an error; the one-bill
// outcome is produced later by the order merge.
type DiningTable struct {
	// id is the unique identifier for the table
	id kernel.UUID

	// number is the unique, human-facing table number
	number int

	// capacity is the number of seats
	capacity int

	// status is the current occupancy state
	status Status

	// guard ensures the table was created via a constructor
	guard kernel.ConstructorGuard
}

// NewDiningTable creates a DiningTable in Available status.
//
// Parameters:
//   - id: unique identifier
//   - number: human-facing table number, must be positive
//   - capacity: seating capacity, must be positive
func NewDiningTable(id kernel.UUID, number int, capacity int) (*DiningTable, error) {
	t := &DiningTable{
		status: Available,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreDiningTable reconstructs a DiningTable from persistent storage.
func RestoreDiningTable(id kernel.UUID, number int, capacity int, status Status) (*DiningTable, error) {
	t, err := NewDiningTable(id, number, capacity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	return t, nil
}

// Validate ensures the DiningTable instance was properly constructed.
func (t *DiningTable) Validate() error {
	if t == nil {
		return ErrDiningTableIsNotConstructed
	}
	return t.guard.Validate(ErrDiningTableIsNotConstructed)
}

// ID returns the table's unique identifier.
func (t *DiningTable) ID() kernel.UUID {
	return t.id
}

// Number returns the human-facing table number.
func (t *DiningTable) Number() int {
	return t.number
}

// Capacity returns the seating capacity.
func (t *DiningTable) Capacity() int {
	return t.capacity
}

// Status returns the current occupancy status.
func (t *DiningTable) Status() Status {
	return t.status
}

// IsOccupied reports whether the table currently holds a claim.
func (t *DiningTable) IsOccupied() bool {
	return t.status == Occupied
}

// Claim marks the table occupied on behalf of an order.
// Claiming an already occupied table is a no-op: a sitting may span several
// orders.
func (t *DiningTable) Claim() {
	t.status = Occupied
}

// Release marks the table available again after the last order relinquishes it.
func (t *DiningTable) Release() {
	t.status = Available
}

func (t *DiningTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *DiningTable) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", number))
	}
	t.number = number
	return nil
}

func (t *DiningTable) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}
