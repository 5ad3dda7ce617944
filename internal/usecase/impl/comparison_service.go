package impl

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/domain/repository"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

type comparisonService struct {
	productRepo     repository.ProductRepository
	shopRepo        repository.ShopRepository
	shopProductRepo repository.ShopProductRepository
}

// ComparisonServiceParams holds dependencies for ComparisonService, injected by Fx.
type ComparisonServiceParams struct {
	fx.In

	ProductRepo     repository.ProductRepository
	ShopRepo        repository.ShopRepository
	ShopProductRepo repository.ShopProductRepository
}

// NewComparisonService creates a new price comparison service instance
func NewComparisonService(params ComparisonServiceParams) usecase.ComparisonUsecase {
	return &comparisonService{
		productRepo:     params.ProductRepo,
		shopRepo:        params.ShopRepo,
		shopProductRepo: params.ShopProductRepo,
	}
}

// ComparePrices builds the full price grid for the resolved product and
// shop sets. The grid always holds exactly one cell per (product, shop)
// pair; a shop not carrying a product yields a nil-price unavailable
// cell. Within each product row, every available cell sharing the
// minimum price is marked best. Unavailable cells never set the
// baseline and are never best, but keep their last known price.
func (s *comparisonService) ComparePrices(ctx context.Context, productIDs, shopIDs []string) (*usecase.ComparisonResult, error) {
	products, droppedProducts, err := s.resolveProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	shops, droppedShops, err := s.resolveShops(ctx, shopIDs)
	if err != nil {
		return nil, err
	}

	result := &usecase.ComparisonResult{
		Products:          products,
		Shops:             shops,
		Cells:             make([]usecase.PriceCell, 0, len(products)*len(shops)),
		DroppedProductIDs: droppedProducts,
		DroppedShopIDs:    droppedShops,
	}
	if len(products) == 0 || len(shops) == 0 {
		return result, nil
	}

	rows, err := s.shopProductRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop products")
	}
	byPair := make(map[[2]string]*entity.ShopProduct, len(rows))
	for _, row := range rows {
		byPair[[2]string{row.ShopID, row.ProductID}] = row
	}

	for _, product := range products {
		cells := make([]usecase.PriceCell, 0, len(shops))

		// Baseline is the minimum available non-nil price for this product.
		var best *float64
		for _, shop := range shops {
			cell := usecase.PriceCell{ProductID: product.ID, ShopID: shop.ID}
			if row, ok := byPair[[2]string{shop.ID, product.ID}]; ok {
				cell.Price = row.CurrentPrice
				cell.IsAvailable = row.IsAvailable
				if row.IsAvailable && row.CurrentPrice != nil {
					if best == nil || *row.CurrentPrice < *best {
						best = row.CurrentPrice
					}
				}
			}
			cells = append(cells, cell)
		}

		if best != nil {
			for i := range cells {
				if cells[i].IsAvailable && cells[i].Price != nil && *cells[i].Price == *best {
					cells[i].IsBestPrice = true
				}
			}
		}

		result.Cells = append(result.Cells, cells...)
	}

	return result, nil
}

// resolveProducts maps ids to active products, silently dropping ids
// that are unknown or inactive. Duplicate ids count once.
func (s *comparisonService) resolveProducts(ctx context.Context, productIDs []string) ([]*entity.Product, []string, error) {
	all, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load products")
	}
	byID := make(map[string]*entity.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	products := make([]*entity.Product, 0, len(productIDs))
	seen := make(map[string]bool, len(productIDs))
	var dropped []string
	for _, id := range productIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		if p, ok := byID[id]; ok && p.IsActive {
			products = append(products, p)
		} else {
			dropped = append(dropped, id)
		}
	}

	return products, dropped, nil
}

// resolveShops maps ids to active shops, silently dropping ids that
// are unknown or inactive. Duplicate ids count once.
func (s *comparisonService) resolveShops(ctx context.Context, shopIDs []string) ([]*entity.Shop, []string, error) {
	all, err := s.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load shops")
	}
	byID := make(map[string]*entity.Shop, len(all))
	for _, sh := range all {
		byID[sh.ID] = sh
	}

	shops := make([]*entity.Shop, 0, len(shopIDs))
	seen := make(map[string]bool, len(shopIDs))
	var dropped []string
	for _, id := range shopIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		if sh, ok := byID[id]; ok && sh.IsActive {
			shops = append(shops, sh)
		} else {
			dropped = append(dropped, id)
		}
	}

	return shops, dropped, nil
}
