package table

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents the operational state of a physical table.
//
// Within the order lifecycle flows, a table transitions to Occupied only as a
// side effect of an order claiming it, and back to Available only as a side
// effect of an order releasing it; the table never self-transitions. Dirty is
// set by floor staff outside those flows (bus/clean cycle) and is included
// here because the set of states is closed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the table can seat new guests.
	Available

	// Occupied means at least one active order has claimed the table.
	Occupied

	// Dirty means the table needs cleaning before it can seat guests again.
	Dirty
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Occupied:  "Occupied",
		Dirty:     "Dirty",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Occupied:  "Occupied",
		Dirty:     "Dirty",
	}
}

// StatusFromString resolves a status by name, matching case-insensitively.
// Returns a ValueIsInvalidError for names outside the valid set.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("tableStatus",
		fmt.Errorf("%q is not a valid table status", name))
}

// Validate checks if the Status value is one of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tableStatus",
			fmt.Errorf("%d is not a valid table status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
