package usecase

import (
	"context"
	"time"

	"pricefield/internal/domain/entity"
)

// HistoryRange bounds a history query; nil edges are open and both
// edges are inclusive
type HistoryRange struct {
	Start *time.Time
	End   *time.Time
}

// PriceHistoryGroup is one shop's (or one product's) slice of the
// history, sorted oldest first
type PriceHistoryGroup struct {
	ShopID    string                `json:"shopId,omitempty"`
	ProductID string                `json:"productId,omitempty"`
	Updates   []*entity.PriceUpdate `json:"updates"`
}

// PriceStats summarizes a set of price points; all fields are zero
// when the input set is empty
type PriceStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// HistoryUsecase defines the interface for price history queries
type HistoryUsecase interface {
	// GetProductHistory returns a product's price updates across all
	// shops, grouped by shop, each group sorted oldest first
	GetProductHistory(ctx context.Context, productID string, r HistoryRange) ([]PriceHistoryGroup, error)

	// GetShopHistory returns a shop's price updates across all its
	// products, grouped by product, each group sorted oldest first
	GetShopHistory(ctx context.Context, shopID string, r HistoryRange) ([]PriceHistoryGroup, error)

	// GetShopProductHistory returns the flat update list for a single
	// product at a single shop, sorted oldest first
	GetShopProductHistory(ctx context.Context, shopID, productID string, r HistoryRange) ([]*entity.PriceUpdate, error)

	// GetPriceStats computes min/max/avg/count over a product's
	// updates at a shop within the range
	GetPriceStats(ctx context.Context, shopID, productID string, r HistoryRange) (*PriceStats, error)
}
