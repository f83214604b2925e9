package account

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a delivery destination from a customer's address book.
// Address book CRUD lives outside this subsystem; the engine only resolves
// addresses through the AddressReader port, which is assumed to scope results
// to the requesting customer.
type Address struct {
	// id is the unique identifier for the address
	id kernel.UUID

	// customerID is the owning customer
	customerID kernel.UUID

	// street is the display line used on delivery slips
	street string
}

// NewAddress creates an Address with validation.
func NewAddress(id kernel.UUID, customerID kernel.UUID, street string) (*Address, error) {
	a := &Address{}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setStreet(street),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// CustomerID returns the owning customer's identifier.
func (a *Address) CustomerID() kernel.UUID {
	return a.customerID
}

// Street returns the display line.
func (a *Address) Street() string {
	return a.street
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.customerID = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}
