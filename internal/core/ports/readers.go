package ports

import (
	"context"

	"restaurant/internal/core/domain/model/account"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// Collaborator read contracts. Catalog management, user accounts and address
// books are external collaborators of the order lifecycle engine; it consumes
// them read-only through these interfaces. All of them return an
// ObjectNotFoundError when the lookup does not resolve.
type (
	// CatalogReader resolves food items by their human-facing name during
	// order placement. Names that do not resolve become placement warnings,
	// not errors.
	CatalogReader interface {
		FindFoodItemByName(ctx context.Context, name string) (*catalog.FoodItem, error)
	}

	// AccountReader resolves the actor (customer or staff) behind a request.
	AccountReader interface {
		GetActor(ctx context.Context, id kernel.UUID) (*account.Actor, error)
	}

	// AddressReader resolves delivery addresses. The address collaborator is
	// assumed to have already scoped/validated the address to its customer.
	AddressReader interface {
		GetAddress(ctx context.Context, id kernel.UUID) (*account.Address, error)
	}
)
