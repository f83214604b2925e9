// Package accountrepo provides read access to user accounts and address books.
// Accounts are managed elsewhere; the order flows resolve actors and saved
// addresses through the AccountReader and AddressReader ports implemented here.
package accountrepo

import (
	"restaurant/internal/core/domain/model/account"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for user accounts.
type ActorDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Role string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for user accounts.
// Overrides GORM's default naming convention to use "actors".
func (ActorDTO) TableName() string {
	return "actors"
}

// AddressDTO represents the database structure for saved delivery addresses.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Street     string    `gorm:"type:varchar(512);not null"`
}

// TableName specifies the database table name for saved addresses.
// Overrides GORM's default naming convention to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

func actorFromDomain(a *account.Actor) ActorDTO {
	return ActorDTO{
		ID:   a.ID().Bytes(),
		Name: a.Name(),
		Role: a.Role().String(),
	}
}

func actorToDomain(dto ActorDTO) (*account.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.NewActor(id, dto.Name, role)
}

func addressFromDomain(a *account.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID().Bytes(),
		CustomerID: a.CustomerID().Bytes(),
		Street:     a.Street(),
	}
}

func addressToDomain(dto AddressDTO) (*account.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return account.NewAddress(id, customerID, dto.Street)
}
