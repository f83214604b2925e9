package services

import (
	"errors"

	"restaurant/internal/core/domain/model/account"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// ErrOrderInProgress signals that a customer tried to cancel an order that
// has progressed too far toward delivery.
var ErrOrderInProgress = errors.New("cannot cancel: order already in progress toward delivery")

// CancellationPolicy is a domain service deciding who may cancel what, and
// when. The decision is a capability check over (actor role, order state,
// ownership) rather than per-role behavior types.
//
// Rules:
//   - A customer may cancel only their own order. A mismatch surfaces as
//     ObjectNotFoundError, not a permission error, so order existence is not
//     revealed to non-owners.
//   - A customer may cancel only while the order has not reached Ready;
//     from Ready onward the kitchen has committed and cancellation fails
//     with ValueIsInvalidError.
//   - Staff (waiter, chef, admin) may cancel at any non-terminal status.
//
// The policy only authorizes; the Status state machine still rejects
// cancelling a Completed order and reports an already-cancelled one as
// already in state.
type CancellationPolicy struct{}

// NewCancellationPolicy creates a new CancellationPolicy instance.
func NewCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{}
}

// Authorize decides whether the actor may cancel the order.
// Returns nil when cancellation may proceed.
func (p CancellationPolicy) Authorize(actor *account.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if actor.IsStaff() {
		return nil
	}

	if !o.CustomerID().IsEqual(actor.ID()) {
		return errs.NewObjectNotFoundError("orderId", o.ID().String())
	}

	if o.Status().HasReached(order.Ready) {
		return errs.NewValueIsInvalidErrorWithCause("cancellation", ErrOrderInProgress)
	}

	return nil
}
