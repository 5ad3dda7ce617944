package impl

import (
	"context"
	"sort"

	"pricefield/internal/domain/entity"
	"pricefield/internal/domain/repository"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

type historyService struct {
	shopProductRepo repository.ShopProductRepository
	priceUpdateRepo repository.PriceUpdateRepository
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	ShopProductRepo repository.ShopProductRepository
	PriceUpdateRepo repository.PriceUpdateRepository
}

// NewHistoryService creates a new price history service instance
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		shopProductRepo: params.ShopProductRepo,
		priceUpdateRepo: params.PriceUpdateRepo,
	}
}

// GetProductHistory returns a product's price updates across all
// shops, grouped by shop, each group sorted oldest first
func (s *historyService) GetProductHistory(ctx context.Context, productID string, r usecase.HistoryRange) ([]usecase.PriceHistoryGroup, error) {
	rows, err := s.shopProductRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop products")
	}

	updates, err := s.updatesForRows(ctx, rows, r)
	if err != nil {
		return nil, err
	}

	byShop := make(map[string][]*entity.PriceUpdate)
	for _, u := range updates {
		byShop[u.ShopID] = append(byShop[u.ShopID], u)
	}

	groups := make([]usecase.PriceHistoryGroup, 0, len(byShop))
	for shopID, shopUpdates := range byShop {
		sortUpdatesAscending(shopUpdates)
		groups = append(groups, usecase.PriceHistoryGroup{ShopID: shopID, Updates: shopUpdates})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ShopID < groups[j].ShopID })

	return groups, nil
}

// GetShopHistory returns a shop's price updates across all its
// products, grouped by product, each group sorted oldest first
func (s *historyService) GetShopHistory(ctx context.Context, shopID string, r usecase.HistoryRange) ([]usecase.PriceHistoryGroup, error) {
	rows, err := s.shopProductRepo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop products")
	}

	updates, err := s.updatesForRows(ctx, rows, r)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string][]*entity.PriceUpdate)
	for _, u := range updates {
		byProduct[u.ProductID] = append(byProduct[u.ProductID], u)
	}

	groups := make([]usecase.PriceHistoryGroup, 0, len(byProduct))
	for productID, productUpdates := range byProduct {
		sortUpdatesAscending(productUpdates)
		groups = append(groups, usecase.PriceHistoryGroup{ProductID: productID, Updates: productUpdates})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ProductID < groups[j].ProductID })

	return groups, nil
}

// GetShopProductHistory returns the flat update list for a single
// product at a single shop, sorted oldest first. An unknown pair
// yields an empty history, not an error.
func (s *historyService) GetShopProductHistory(ctx context.Context, shopID, productID string, r usecase.HistoryRange) ([]*entity.PriceUpdate, error) {
	row, err := s.shopProductRepo.FindByShopAndProduct(ctx, shopID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrShopProductNotFound) {
			return []*entity.PriceUpdate{}, nil
		}

		return nil, errors.Wrap(err, "failed to find shop product")
	}

	updates, err := s.priceUpdateRepo.FindByShopProduct(ctx, row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find price updates")
	}

	filtered := filterUpdates(updates, r)
	sortUpdatesAscending(filtered)

	return filtered, nil
}

// GetPriceStats computes min/max/avg/count over a product's updates at
// a shop within the range. All fields are zero when no updates match.
func (s *historyService) GetPriceStats(ctx context.Context, shopID, productID string, r usecase.HistoryRange) (*usecase.PriceStats, error) {
	updates, err := s.GetShopProductHistory(ctx, shopID, productID, r)
	if err != nil {
		return nil, err
	}

	stats := &usecase.PriceStats{}
	if len(updates) == 0 {
		return stats, nil
	}

	sum := 0.0
	stats.Min = updates[0].Price
	stats.Max = updates[0].Price
	for _, u := range updates {
		if u.Price < stats.Min {
			stats.Min = u.Price
		}
		if u.Price > stats.Max {
			stats.Max = u.Price
		}
		sum += u.Price
	}
	stats.Count = len(updates)
	stats.Avg = sum / float64(stats.Count)

	return stats, nil
}

// updatesForRows loads and range-filters the updates of a set of join rows
func (s *historyService) updatesForRows(ctx context.Context, rows []*entity.ShopProduct, r usecase.HistoryRange) ([]*entity.PriceUpdate, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	updates, err := s.priceUpdateRepo.FindByShopProducts(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find price updates")
	}

	return filterUpdates(updates, r), nil
}

// filterUpdates keeps updates inside the range; both bounds are inclusive
func filterUpdates(updates []*entity.PriceUpdate, r usecase.HistoryRange) []*entity.PriceUpdate {
	filtered := make([]*entity.PriceUpdate, 0, len(updates))
	for _, u := range updates {
		if r.Start != nil && u.RecordedAt.Before(*r.Start) {
			continue
		}
		if r.End != nil && u.RecordedAt.After(*r.End) {
			continue
		}
		filtered = append(filtered, u)
	}

	return filtered
}

func sortUpdatesAscending(updates []*entity.PriceUpdate) {
	sort.SliceStable(updates, func(i, j int) bool {
		return updates[i].RecordedAt.Before(updates[j].RecordedAt)
	})
}
