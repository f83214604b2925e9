package account

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is whoever issues a request against the order lifecycle engine:
// a customer placing or cancelling an order, or a member of staff advancing
// one. Account management itself (registration, authentication, profiles)
// lives outside this subsystem; the engine only reads actors through the
// AccountReader port.
type Actor struct {
	// id is the unique identifier for the actor
	id kernel.UUID

	// name is the display name
	name string

	// role determines the actor's capabilities
	role Role
}

// NewActor creates an Actor with validation.
func NewActor(id kernel.UUID, name string, role Role) (*Actor, error) {
	a := &Actor{}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Actor) Name() string {
	return a.name
}

// Role returns the actor's role.
func (a *Actor) Role() Role {
	return a.role
}

// IsStaff reports whether the actor belongs to restaurant staff.
func (a *Actor) IsStaff() bool {
	return a.role.IsStaff()
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
