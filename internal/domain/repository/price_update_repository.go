package repository

import (
	"context"

	"pricefield/internal/domain/entity"
)

// PriceUpdateRepository defines the interface for the append-only price log.
type PriceUpdateRepository interface {
	// FindAll retrieves every price update.
	FindAll(ctx context.Context) ([]*entity.PriceUpdate, error)

	// FindByShopProduct retrieves every update recorded for one join row.
	FindByShopProduct(ctx context.Context, shopProductID string) ([]*entity.PriceUpdate, error)

	// FindByShopProducts retrieves every update recorded for a set of join rows.
	FindByShopProducts(ctx context.Context, shopProductIDs []string) ([]*entity.PriceUpdate, error)

	// Append stores a new immutable log entry.
	Append(ctx context.Context, update *entity.PriceUpdate) error

	// DeleteByShopProduct bulk-deletes every update for one join row.
	// Used only when the join row itself is removed.
	DeleteByShopProduct(ctx context.Context, shopProductID string) error
}
