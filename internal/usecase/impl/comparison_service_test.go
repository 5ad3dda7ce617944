package impl

import (
	"context"
	"testing"

	"pricefield/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) setPrice(t *testing.T, shopID, productID string, price float64) {
	t.Helper()

	_, err := e.prices.SetPrice(context.Background(), usecase.SetPriceInput{
		ShopID:    shopID,
		ProductID: productID,
		Price:     price,
		ChangedBy: "owner",
	})
	require.NoError(t, err)
}

func findCell(t *testing.T, result *usecase.ComparisonResult, productID, shopID string) usecase.PriceCell {
	t.Helper()

	for _, cell := range result.Cells {
		if cell.ProductID == productID && cell.ShopID == shopID {
			return cell
		}
	}
	t.Fatalf("cell not found for product %s shop %s", productID, shopID)

	return usecase.PriceCell{}
}

func TestComparisonService_CheapestShopMarkedBest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.setPrice(t, "shop_2", "prod_1", 8)

	result, err := env.comparison.ComparePrices(ctx, []string{"prod_1"}, []string{"shop_1", "shop_2"})
	require.NoError(t, err)
	require.Len(t, result.Cells, 2)

	cell1 := findCell(t, result, "prod_1", "shop_1")
	assert.False(t, cell1.IsBestPrice)
	assert.Equal(t, 10.0, *cell1.Price)

	cell2 := findCell(t, result, "prod_1", "shop_2")
	assert.True(t, cell2.IsBestPrice)
	assert.Equal(t, 8.0, *cell2.Price)
}

func TestComparisonService_UnavailableCheapestYieldsBestToNextShop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.setPrice(t, "shop_2", "prod_1", 8)
	_, err := env.prices.SetAvailability(ctx, "shop_2", "prod_1", false)
	require.NoError(t, err)

	result, err := env.comparison.ComparePrices(ctx, []string{"prod_1"}, []string{"shop_1", "shop_2"})
	require.NoError(t, err)

	cell1 := findCell(t, result, "prod_1", "shop_1")
	assert.True(t, cell1.IsBestPrice)

	// The out-of-stock cell keeps its last known price but can never
	// be best nor set the baseline.
	cell2 := findCell(t, result, "prod_1", "shop_2")
	assert.False(t, cell2.IsBestPrice)
	assert.False(t, cell2.IsAvailable)
	require.NotNil(t, cell2.Price)
	assert.Equal(t, 8.0, *cell2.Price)
}

func TestComparisonService_TiedMinimumMarksAllBest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	owner3 := env.seedUser(t, "user_o3", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedShop(t, "shop_3", owner3.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 8)
	env.setPrice(t, "shop_2", "prod_1", 8)
	env.setPrice(t, "shop_3", "prod_1", 12)

	result, err := env.comparison.ComparePrices(ctx, []string{"prod_1"}, []string{"shop_1", "shop_2", "shop_3"})
	require.NoError(t, err)

	assert.True(t, findCell(t, result, "prod_1", "shop_1").IsBestPrice)
	assert.True(t, findCell(t, result, "prod_1", "shop_2").IsBestPrice)
	assert.False(t, findCell(t, result, "prod_1", "shop_3").IsBestPrice)
}

func TestComparisonService_GridHoldsOneCellPerPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")
	env.seedProduct(t, "prod_2", "Rice")
	env.seedProduct(t, "prod_3", "Milk")

	// Only one pair has a quote; the grid still covers all six.
	env.setPrice(t, "shop_1", "prod_1", 10)

	result, err := env.comparison.ComparePrices(ctx,
		[]string{"prod_1", "prod_2", "prod_3"},
		[]string{"shop_1", "shop_2"},
	)
	require.NoError(t, err)
	assert.Len(t, result.Cells, 6)

	absent := findCell(t, result, "prod_2", "shop_1")
	assert.Nil(t, absent.Price)
	assert.False(t, absent.IsAvailable)
	assert.False(t, absent.IsBestPrice)
}

func TestComparisonService_EmptyInputsYieldEmptyGrid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.comparison.ComparePrices(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Cells)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.Shops)
}

func TestComparisonService_UnknownAndInactiveIDsDropped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", "shop_owner")
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")
	inactive := env.seedProduct(t, "prod_2", "Rice")
	inactive.IsActive = false
	require.NoError(t, env.productRepo.Save(ctx, inactive))

	result, err := env.comparison.ComparePrices(ctx,
		[]string{"prod_1", "prod_2", "prod_missing"},
		[]string{"shop_1", "shop_missing"},
	)
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	require.Len(t, result.Shops, 1)
	assert.Len(t, result.Cells, 1)
	assert.ElementsMatch(t, []string{"prod_2", "prod_missing"}, result.DroppedProductIDs)
	assert.ElementsMatch(t, []string{"shop_missing"}, result.DroppedShopIDs)
}

func TestComparisonService_DuplicateIDsCountOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.setPrice(t, "shop_2", "prod_1", 8)

	result, err := env.comparison.ComparePrices(ctx,
		[]string{"prod_1", "prod_1", "prod_1"},
		[]string{"shop_1", "shop_2", "shop_1", "shop_missing", "shop_missing"},
	)
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	require.Len(t, result.Shops, 2)
	assert.Len(t, result.Cells, 2)
	assert.Equal(t, []string{"shop_missing"}, result.DroppedShopIDs)
	assert.Empty(t, result.DroppedProductIDs)
}
