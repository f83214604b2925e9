package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// By embedding a ConstructorGuard in a struct, a zero-value instance can be
// distinguished from one that went through its constructor, so invariants
// established at construction time can be relied upon everywhere else.
//
// Example:
//
//	var ErrOrderItemNotConstructed = errors.New("OrderItem must be created via NewOrderItem")
//
//	type OrderItem struct {
//	    id    UUID
//	    guard ConstructorGuard
//	}
//
//	func (i OrderItem) Validate() error {
//	    return i.guard.Validate(ErrOrderItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function. For a zero-value guard it returns the
// provided validation error, or ErrDefaultConstructorGuard if that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
