package repository

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/errors"
)

// Domain-specific errors for shop-product persistence.
var (
	// ErrShopProductNotFound is returned when a shop-product join row is not found.
	ErrShopProductNotFound = errors.New("shop product not found")
)

// ShopProductRepository defines the interface for the shop-product join rows
// that carry each shop's current price per product.
type ShopProductRepository interface {
	// FindAll retrieves every join row.
	FindAll(ctx context.Context) ([]*entity.ShopProduct, error)

	// FindByID retrieves a join row by its unique id.
	FindByID(ctx context.Context, id string) (*entity.ShopProduct, error)

	// FindByShopAndProduct retrieves the join row for the composite key.
	// At most one row exists per (shop, product) pair.
	FindByShopAndProduct(ctx context.Context, shopID, productID string) (*entity.ShopProduct, error)

	// FindByShop retrieves all join rows for a shop.
	FindByShop(ctx context.Context, shopID string) ([]*entity.ShopProduct, error)

	// FindByProduct retrieves all join rows for a product.
	FindByProduct(ctx context.Context, productID string) ([]*entity.ShopProduct, error)

	// Save upserts a join row, replacing any existing row with the same
	// (shop, product) pair.
	Save(ctx context.Context, shopProduct *entity.ShopProduct) error

	// DeleteByID removes a join row by id.
	DeleteByID(ctx context.Context, id string) error
}
