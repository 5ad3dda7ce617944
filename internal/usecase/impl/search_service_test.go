package impl

import (
	"context"
	"testing"

	"pricefield/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_MatchesProductsAndShops(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", entity.RoleShopOwner)
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Cherry Tomato")
	env.seedProduct(t, "prod_2", "Rice")

	result, err := env.search.Search(ctx, "TOMA")
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "prod_1", result.Products[0].ID)
	assert.Empty(t, result.Shops)

	result, err = env.search.Search(ctx, "shop")
	require.NoError(t, err)
	assert.Len(t, result.Shops, 1)
}

func TestSearchService_InactiveEntriesExcluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hidden := env.seedProduct(t, "prod_1", "Tomato")
	hidden.IsActive = false
	require.NoError(t, env.productRepo.Save(ctx, hidden))

	result, err := env.search.Search(ctx, "tomato")
	require.NoError(t, err)
	assert.Empty(t, result.Products)
}

func TestSearchService_EmptyTermReturnsNothingAndRecordsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.search.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.Shops)

	history, err := env.search.GetSearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSearchService_HistoryDeduplicatedAndCapped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// The limit is 5 in the test config.
	for _, term := range []string{"a", "b", "c", "d", "e", "f", "B"} {
		_, err := env.search.Search(ctx, term)
		require.NoError(t, err)
	}

	history, err := env.search.GetSearchHistory(ctx)
	require.NoError(t, err)
	// "B" replaces the earlier "b" at the front instead of duplicating it.
	assert.Equal(t, []string{"B", "f", "e", "d", "c"}, history)
}

func TestSearchService_ClearHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.search.Search(ctx, "tomato")
	require.NoError(t, err)

	require.NoError(t, env.search.ClearSearchHistory(ctx))

	history, err := env.search.GetSearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
