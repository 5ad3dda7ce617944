package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// PriceCell is one product-at-shop entry in the comparison grid
type PriceCell struct {
	ProductID   string   `json:"productId"`
	ShopID      string   `json:"shopId"`
	Price       *float64 `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
	IsBestPrice bool     `json:"isBestPrice"`
}

// ComparisonResult is the full comparison grid for the resolved
// product and shop sets, plus diagnostics for ids that were dropped
type ComparisonResult struct {
	Products []*entity.Product `json:"products"`
	Shops    []*entity.Shop    `json:"shops"`
	Cells    []PriceCell       `json:"cells"`

	DroppedProductIDs []string `json:"droppedProductIds,omitempty"`
	DroppedShopIDs    []string `json:"droppedShopIds,omitempty"`
}

// ComparisonUsecase defines the interface for cross-shop price
// comparison
type ComparisonUsecase interface {
	// ComparePrices builds the price grid for the given product and
	// shop id sets; unknown or inactive ids are dropped, not rejected
	ComparePrices(ctx context.Context, productIDs, shopIDs []string) (*ComparisonResult, error)
}
