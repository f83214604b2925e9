package order

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// LocationKind discriminates the two places an order can be fulfilled at.
type LocationKind int

const (
	// LocationUnknown represents an unconstructed location.
	LocationUnknown LocationKind = iota

	// LocationTable marks an order served at a physical table.
	LocationTable

	// LocationAddress marks an order delivered to a customer address.
	LocationAddress
)

// ErrLocationIsNotConstructed indicates that a Location was not created through
// NewTableLocation or NewAddressLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"Location must be created via NewTableLocation or NewAddressLocation")

// Location is a tagged variant identifying where an order is fulfilled:
// exactly one of a table or a delivery address. Business logic treats the two
// as mutually exclusive even though the persisted shape keeps two nullable
// foreign keys for storage simplicity; this value object is the single place
// where that exclusivity is made structural.
//
// Example:
//
//	loc := order.NewTableLocation(tableID)
//	if id, ok := loc.TableID(); ok {
//	    // table-bound order
//	}
type Location struct {
	kind LocationKind
	id   kernel.UUID
}

// NewTableLocation creates a Location bound to a physical table.
func NewTableLocation(tableID kernel.UUID) (Location, error) {
	if err := tableID.Validate(); err != nil {
		return Location{}, err
	}
	return Location{kind: LocationTable, id: tableID}, nil
}

// NewAddressLocation creates a Location bound to a delivery address.
func NewAddressLocation(addressID kernel.UUID) (Location, error) {
	if err := addressID.Validate(); err != nil {
		return Location{}, err
	}
	return Location{kind: LocationAddress, id: addressID}, nil
}

// Kind returns the variant tag.
func (l Location) Kind() LocationKind {
	return l.kind
}

// TableID returns the table identifier and true when the location is a table.
func (l Location) TableID() (kernel.UUID, bool) {
	if l.kind != LocationTable {
		return kernel.UUID{}, false
	}
	return l.id, true
}

// AddressID returns the address identifier and true when the location is an address.
func (l Location) AddressID() (kernel.UUID, bool) {
	if l.kind != LocationAddress {
		return kernel.UUID{}, false
	}
	return l.id, true
}

// IsTable reports whether the order is table-bound.
func (l Location) IsTable() bool {
	return l.kind == LocationTable
}

// Validate ensures the Location was built through one of its constructors.
func (l Location) Validate() error {
	if l.kind != LocationTable && l.kind != LocationAddress {
		return ErrLocationIsNotConstructed
	}
	return l.id.Validate()
}
