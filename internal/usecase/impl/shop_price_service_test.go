package impl

import (
	"context"
	"testing"

	"pricefield/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Taipei Main Station and two points roughly 1km / 8km away.
const (
	taipeiLat = 25.0478
	taipeiLng = 121.5170

	nearLat = 25.0478
	nearLng = 121.5270

	farLat = 25.1200
	farLng = 121.5170
)

func TestShopPriceService_SortByPriceAscending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 12)
	env.setPrice(t, "shop_2", "prod_1", 8)

	entries, err := env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{
		SortBy:    usecase.SortByPrice,
		SortOrder: usecase.SortOrderAsc,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "shop_2", entries[0].Shop.ID)
	assert.Equal(t, "shop_1", entries[1].Shop.ID)
}

func TestShopPriceService_DistanceAnnotatedWhenBothSidesHaveCoordinates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_near", owner1.ID, floatPtr(nearLat), floatPtr(nearLng))
	env.seedShop(t, "shop_nowhere", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_near", "prod_1", 10)
	env.setPrice(t, "shop_nowhere", "prod_1", 9)

	entries, err := env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{
		UserLat: floatPtr(taipeiLat),
		UserLng: floatPtr(taipeiLng),
		SortBy:  usecase.SortByPrice,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, entry := range entries {
		switch entry.Shop.ID {
		case "shop_near":
			require.NotNil(t, entry.DistanceKm)
			assert.InDelta(t, 1.0, *entry.DistanceKm, 0.2)
		case "shop_nowhere":
			assert.Nil(t, entry.DistanceKm)
		}
	}
}

func TestShopPriceService_SortByDistanceWithoutUserCoordinates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	// Neither shop has coordinates, and their name order is the
	// reverse of their listing order.
	zebra := env.seedShop(t, "shop_z", owner1.ID, nil, nil)
	zebra.Name = "Zebra Mart"
	require.NoError(t, env.shopRepo.Save(ctx, zebra))
	apple := env.seedShop(t, "shop_a", owner2.ID, nil, nil)
	apple.Name = "Apple Mart"
	require.NoError(t, env.shopRepo.Save(ctx, apple))
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_z", "prod_1", 10)
	env.setPrice(t, "shop_a", "prod_1", 9)

	// No caller coordinates: nothing has a distance, the sort must
	// still succeed and entries keep their pre-sort relative order.
	entries, err := env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{
		SortBy: usecase.SortByDistance,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Nil(t, entry.DistanceKm)
	}
	assert.Equal(t, "shop_z", entries[0].Shop.ID)
	assert.Equal(t, "shop_a", entries[1].Shop.ID)
}

func TestShopPriceService_DistanceSortPutsAnnotatedEntriesFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	owner3 := env.seedUser(t, "user_o3", "shop_owner")
	env.seedShop(t, "shop_far", owner1.ID, floatPtr(farLat), floatPtr(farLng))
	env.seedShop(t, "shop_nowhere", owner2.ID, nil, nil)
	env.seedShop(t, "shop_near", owner3.ID, floatPtr(nearLat), floatPtr(nearLng))
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_far", "prod_1", 7)
	env.setPrice(t, "shop_nowhere", "prod_1", 8)
	env.setPrice(t, "shop_near", "prod_1", 9)

	entries, err := env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{
		UserLat:   floatPtr(taipeiLat),
		UserLng:   floatPtr(taipeiLng),
		SortBy:    usecase.SortByDistance,
		SortOrder: usecase.SortOrderAsc,
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "shop_near", entries[0].Shop.ID)
	assert.Equal(t, "shop_far", entries[1].Shop.ID)
	// Entries with no distance trail the annotated ones, in every
	// direction.
	assert.Equal(t, "shop_nowhere", entries[2].Shop.ID)

	entries, err = env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{
		UserLat:   floatPtr(taipeiLat),
		UserLng:   floatPtr(taipeiLng),
		SortBy:    usecase.SortByDistance,
		SortOrder: usecase.SortOrderDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, "shop_far", entries[0].Shop.ID)
	assert.Equal(t, "shop_near", entries[1].Shop.ID)
	assert.Equal(t, "shop_nowhere", entries[2].Shop.ID)
}

func TestShopPriceService_RadiusExcludesShopsWithoutCoordinates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	owner3 := env.seedUser(t, "user_o3", "shop_owner")
	env.seedShop(t, "shop_near", owner1.ID, floatPtr(nearLat), floatPtr(nearLng))
	env.seedShop(t, "shop_far", owner2.ID, floatPtr(farLat), floatPtr(farLng))
	env.seedShop(t, "shop_nowhere", owner3.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_near", "prod_1", 10)
	env.setPrice(t, "shop_far", "prod_1", 9)
	env.setPrice(t, "shop_nowhere", "prod_1", 8)

	entries, err := env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{
		UserLat:  floatPtr(taipeiLat),
		UserLng:  floatPtr(taipeiLng),
		RadiusKm: floatPtr(3),
		SortBy:   usecase.SortByPrice,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shop_near", entries[0].Shop.ID)
}

func TestShopPriceService_InactiveShopsExcluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	closed := env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.setPrice(t, "shop_2", "prod_1", 8)

	closed.IsActive = false
	require.NoError(t, env.shopRepo.Save(ctx, closed))

	entries, err := env.listing.ListShopPrices(ctx, "prod_1", usecase.ShopPriceQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shop_1", entries[0].Shop.ID)
}
