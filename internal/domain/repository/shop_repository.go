package repository

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/errors"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
)

// ShopRepository defines the interface for shop-related storage operations.
type ShopRepository interface {
	// FindAll retrieves every stored shop.
	FindAll(ctx context.Context) ([]*entity.Shop, error)

	// FindByID retrieves a shop by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Shop, error)

	// FindByOwner retrieves the first shop owned by the given user.
	// One active shop per owner is enforced at the write path.
	FindByOwner(ctx context.Context, ownerID string) (*entity.Shop, error)

	// FindActive retrieves all active shops.
	FindActive(ctx context.Context) ([]*entity.Shop, error)

	// Save upserts a shop by id.
	Save(ctx context.Context, shop *entity.Shop) error

	// DeleteByID removes a shop by id.
	DeleteByID(ctx context.Context, id string) error
}
