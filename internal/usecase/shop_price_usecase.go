package usecase

import (
	"context"
	"time"

	"pricefield/internal/domain/entity"
)

// Sort keys accepted by ListShopPrices
const (
	SortByPrice    = "price"
	SortByDistance = "distance"
	SortByRating   = "rating"
	SortByName     = "name"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ShopPriceQuery shapes the listing of shops carrying a product.
// Coordinates and radius are optional; without them the listing simply
// omits distances.
type ShopPriceQuery struct {
	UserLat   *float64
	UserLng   *float64
	RadiusKm  *float64
	SortBy    string
	SortOrder string
}

// ShopPriceEntry is one shop's quote for the requested product
type ShopPriceEntry struct {
	Shop          *entity.Shop `json:"shop"`
	Price         *float64     `json:"price"`
	IsAvailable   bool         `json:"isAvailable"`
	DistanceKm    *float64     `json:"distanceKm,omitempty"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// ShopPriceListingUsecase defines the interface for the buyer-facing
// shop listing of a product
type ShopPriceListingUsecase interface {
	// ListShopPrices returns every active shop carrying the product,
	// with optional distance annotation, radius filtering and sorting
	ListShopPrices(ctx context.Context, productID string, query ShopPriceQuery) ([]ShopPriceEntry, error)
}
