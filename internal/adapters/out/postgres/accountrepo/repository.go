package accountrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/account"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements the AccountReader and AddressReader ports
// using GORM. Like the catalog, accounts are read-only from the order flows.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account reader.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// GetActor retrieves the actor behind a request by ID.
func (r *GormAccountRepository) GetActor(ctx context.Context, id kernel.UUID) (*account.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actorId", id.String())
		}
		return nil, err
	}

	return actorToDomain(dto)
}

// GetAddress retrieves a saved delivery address by ID.
func (r *GormAccountRepository) GetAddress(ctx context.Context, id kernel.UUID) (*account.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressId", id.String())
		}
		return nil, err
	}

	return addressToDomain(dto)
}

// SeedActor inserts the actor if no row with its ID exists yet.
// Used by the composition root to provision demo accounts on startup.
func (r *GormAccountRepository) SeedActor(ctx context.Context, actor *account.Actor) error {
	dto := actorFromDomain(actor)
	return r.db.WithContext(ctx).Where("id = ?", dto.ID).FirstOrCreate(&dto).Error
}

// SeedAddress inserts the address if no row with its ID exists yet.
func (r *GormAccountRepository) SeedAddress(ctx context.Context, address *account.Address) error {
	dto := addressFromDomain(address)
	return r.db.WithContext(ctx).Where("id = ?", dto.ID).FirstOrCreate(&dto).Error
}
