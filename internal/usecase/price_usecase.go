package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// SetPriceInput carries the fields needed to quote a product price at
// a shop
type SetPriceInput struct {
	ShopID    string
	ProductID string
	Price     float64
	ChangedBy string
	PaymentID *string
}

// PriceUsecase defines the interface for the shop-side price write path
type PriceUsecase interface {
	// SetPrice upserts the shop's quote for a product and appends an
	// immutable price update record
	SetPrice(ctx context.Context, input SetPriceInput) (*entity.ShopProduct, error)

	// SetAvailability flips the in-stock flag without touching the price
	SetAvailability(ctx context.Context, shopID, productID string, available bool) (*entity.ShopProduct, error)

	// GetShopProduct retrieves a single shop's quote for a product
	GetShopProduct(ctx context.Context, shopID, productID string) (*entity.ShopProduct, error)

	// ListShopProducts retrieves every quote a shop currently carries
	ListShopProducts(ctx context.Context, shopID string) ([]*entity.ShopProduct, error)

	// RemoveShopProduct delists a product from a shop and drops its
	// price history
	RemoveShopProduct(ctx context.Context, shopID, productID string) error
}
