package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// CreateShopInput carries the fields needed to open a shop
type CreateShopInput struct {
	OwnerID   string
	Name      string
	Category  entity.ShopCategory
	Address   string
	District  string
	City      string
	Latitude  *float64
	Longitude *float64
}

// UpdateShopInput carries optional shop fields; nil means keep the
// stored value
type UpdateShopInput struct {
	Name      *string
	Category  *entity.ShopCategory
	Address   *string
	District  *string
	City      *string
	Latitude  *float64
	Longitude *float64
	IsActive  *bool
}

// ShopUsecase defines the interface for shop management use cases
type ShopUsecase interface {
	// CreateShop opens a new shop; an owner may hold at most one shop
	CreateShop(ctx context.Context, input CreateShopInput) (*entity.Shop, error)

	// GetShop retrieves a shop by id
	GetShop(ctx context.Context, shopID string) (*entity.Shop, error)

	// GetShopByOwner retrieves the shop owned by the given user
	GetShopByOwner(ctx context.Context, ownerID string) (*entity.Shop, error)

	// ListShops retrieves all shops
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListActiveShops retrieves shops that are currently active
	ListActiveShops(ctx context.Context) ([]*entity.Shop, error)

	// UpdateShop applies a partial update to a shop
	UpdateShop(ctx context.Context, shopID string, input UpdateShopInput) (*entity.Shop, error)

	// RateShop records a 1-5 rating and recomputes the shop's
	// average rating and goodwill score
	RateShop(ctx context.Context, shopID string, rating int) (*entity.Shop, error)

	// DeleteShop removes a shop by id
	DeleteShop(ctx context.Context, shopID string) error

	// GenerateShopQR builds a shareable QR code image for a shop
	GenerateShopQR(ctx context.Context, shopID string) ([]byte, error)

	// ResolveShopQR parses scanned QR data and returns the shop it
	// points to
	ResolveShopQR(ctx context.Context, qrData string) (*entity.Shop, error)
}
