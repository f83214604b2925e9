package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose happy path runs
//
//	Placed -> Preparing -> Ready -> Shipped -> Delivered -> Completed
//
// with Cancelled reachable from any non-terminal state. Completed and
// Cancelled are terminal: no transition leaves them.
//
// The transition operation itself does not reject "backward" moves along the
// happy path (e.g. Ready -> Preparing); ordering discipline along the happy
// path is a caller-side convention. The machine does enforce three guards:
// the target must be a known status, it must differ from the current status,
// and the current status must not be terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created.
	Placed

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is prepared and awaiting pickup or serving.
	Ready

	// Shipped indicates the order has left the kitchen toward its table
	// or delivery address.
	Shipped

	// Delivered indicates the order has reached the customer. Transitioning
	// into this status triggers the order merge side effect at the
	// application layer.
	Delivered

	// Completed indicates the order has been billed and closed.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString resolves a status by name, matching case-insensitively.
// Returns a ValueIsInvalidError when the name is not one of the closed set.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", name))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any values outside the closed set are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// HasReached reports whether the status is at or past the given milestone in
// the happy-path ordering. A Cancelled order has not "reached" anything: it
// left the happy path. Used by the cancellation policy to decide whether an
// order has progressed too far for a customer to abandon it.
func (s Status) HasReached(milestone Status) bool {
	if s == Unknown || s == Cancelled {
		return false
	}
	return s >= milestone
}

// TransitionTo validates a transition from the current status to the target
// and returns the new status.
//
// Guards, in order:
//   - the target must be a valid status (ValueIsInvalidError otherwise);
//   - the target must differ from the current status (AlreadyInStateError
//     otherwise; no-op transitions are rejected, not silently accepted,
//     terminal statuses included);
//   - the current status must not be terminal (ValueIsInvalidError otherwise).
//
// Any move that passes all three guards is accepted, including backward moves
// along the happy path and cancellation from any non-terminal state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == s {
		return Unknown, errs.NewAlreadyInStateError("orderStatus", s.String())
	}

	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, target))
	}

	return target, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancelling a Completed order fails
// with ValueIsInvalidError; cancelling an already-cancelled order reports
// AlreadyInStateError.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
