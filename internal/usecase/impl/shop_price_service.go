package impl

import (
	"context"
	"sort"
	"strings"

	"pricefield/internal/domain/entity"
	"pricefield/internal/domain/repository"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

type shopPriceService struct {
	shopRepo        repository.ShopRepository
	shopProductRepo repository.ShopProductRepository
}

// ShopPriceServiceParams holds dependencies for ShopPriceService, injected by Fx.
type ShopPriceServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	ShopProductRepo repository.ShopProductRepository
}

// NewShopPriceService creates a new shop price listing service instance
func NewShopPriceService(params ShopPriceServiceParams) usecase.ShopPriceListingUsecase {
	return &shopPriceService{
		shopRepo:        params.ShopRepo,
		shopProductRepo: params.ShopProductRepo,
	}
}

// ListShopPrices returns every active shop carrying the product.
// Distances appear only when both the caller and the shop have
// coordinates; a radius filter drops entries without a distance.
// Sorting by distance never fails when coordinates are missing:
// entries with a distance always come first, the rest keep their
// pre-sort relative order.
func (s *shopPriceService) ListShopPrices(ctx context.Context, productID string, query usecase.ShopPriceQuery) ([]usecase.ShopPriceEntry, error) {
	rows, err := s.shopProductRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop products")
	}

	shops, err := s.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}
	byID := make(map[string]*entity.Shop, len(shops))
	for _, shop := range shops {
		byID[shop.ID] = shop
	}

	hasUserPoint := query.UserLat != nil && query.UserLng != nil

	entries := make([]usecase.ShopPriceEntry, 0, len(rows))
	for _, row := range rows {
		shop, ok := byID[row.ShopID]
		if !ok || !shop.IsActive {
			continue
		}

		entry := usecase.ShopPriceEntry{
			Shop:          shop,
			Price:         row.CurrentPrice,
			IsAvailable:   row.IsAvailable,
			LastUpdatedAt: row.LastUpdatedAt,
		}
		if hasUserPoint && shop.HasCoordinates() {
			km := geo.Distance(
				orb.Point{*query.UserLng, *query.UserLat},
				orb.Point{*shop.Longitude, *shop.Latitude},
			) / 1000
			entry.DistanceKm = &km
		}

		if query.RadiusKm != nil {
			if entry.DistanceKm == nil || *entry.DistanceKm > *query.RadiusKm {
				continue
			}
		}

		entries = append(entries, entry)
	}

	sortEntries(entries, query.SortBy, query.SortOrder)

	return entries, nil
}

// sortEntries orders the listing by the requested key. Entries missing
// the key's value (nil price, nil distance) sort last whatever the
// direction.
func sortEntries(entries []usecase.ShopPriceEntry, sortBy, sortOrder string) {
	desc := sortOrder == usecase.SortOrderDesc

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		switch sortBy {
		case usecase.SortByDistance:
			if (a.DistanceKm == nil) != (b.DistanceKm == nil) {
				return a.DistanceKm != nil
			}
			if a.DistanceKm == nil {
				// Neither side has a distance; the stable sort keeps
				// their input order.
				return false
			}
			if desc {
				return *a.DistanceKm > *b.DistanceKm
			}

			return *a.DistanceKm < *b.DistanceKm

		case usecase.SortByRating:
			if desc {
				return a.Shop.AverageRating > b.Shop.AverageRating
			}

			return a.Shop.AverageRating < b.Shop.AverageRating

		case usecase.SortByName:
			if desc {
				return strings.ToLower(a.Shop.Name) > strings.ToLower(b.Shop.Name)
			}

			return strings.ToLower(a.Shop.Name) < strings.ToLower(b.Shop.Name)

		default: // price
			if (a.Price == nil) != (b.Price == nil) {
				return a.Price != nil
			}
			if a.Price == nil {
				return false
			}
			if desc {
				return *a.Price > *b.Price
			}

			return *a.Price < *b.Price
		}
	})
}
