package impl

import (
	"context"
	"testing"
	"time"

	"pricefield/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_InclusiveDateBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", "shop_owner")
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	day1 := env.clock.Now()
	env.setPrice(t, "shop_1", "prod_1", 10)
	env.clock.advance(24 * time.Hour)
	day2 := env.clock.Now()
	env.setPrice(t, "shop_1", "prod_1", 11)
	env.clock.advance(24 * time.Hour)
	env.setPrice(t, "shop_1", "prod_1", 12)

	// Both bounds land exactly on recorded timestamps and both are
	// kept.
	updates, err := env.history.GetShopProductHistory(ctx, "shop_1", "prod_1", usecase.HistoryRange{
		Start: timePtr(day1),
		End:   timePtr(day2),
	})
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, 10.0, updates[0].Price)
	assert.Equal(t, 11.0, updates[1].Price)
}

func TestHistoryService_SortedOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", "shop_owner")
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 12)
	env.clock.advance(time.Hour)
	env.setPrice(t, "shop_1", "prod_1", 9)
	env.clock.advance(time.Hour)
	env.setPrice(t, "shop_1", "prod_1", 15)

	updates, err := env.history.GetShopProductHistory(ctx, "shop_1", "prod_1", usecase.HistoryRange{})
	require.NoError(t, err)
	require.Len(t, updates, 3)
	assert.Equal(t, []float64{12, 9, 15}, []float64{updates[0].Price, updates[1].Price, updates[2].Price})
	assert.True(t, updates[0].RecordedAt.Before(updates[2].RecordedAt))
}

func TestHistoryService_UnknownPairYieldsEmptyHistory(t *testing.T) {
	env := newTestEnv(t)

	updates, err := env.history.GetShopProductHistory(context.Background(), "shop_missing", "prod_missing", usecase.HistoryRange{})
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestHistoryService_ProductHistoryGroupedByShop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner1 := env.seedUser(t, "user_o1", "shop_owner")
	owner2 := env.seedUser(t, "user_o2", "shop_owner")
	env.seedShop(t, "shop_1", owner1.ID, nil, nil)
	env.seedShop(t, "shop_2", owner2.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.clock.advance(time.Hour)
	env.setPrice(t, "shop_2", "prod_1", 8)
	env.clock.advance(time.Hour)
	env.setPrice(t, "shop_1", "prod_1", 9)

	groups, err := env.history.GetProductHistory(ctx, "prod_1", usecase.HistoryRange{})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "shop_1", groups[0].ShopID)
	require.Len(t, groups[0].Updates, 2)
	assert.Equal(t, 10.0, groups[0].Updates[0].Price)
	assert.Equal(t, 9.0, groups[0].Updates[1].Price)

	assert.Equal(t, "shop_2", groups[1].ShopID)
	require.Len(t, groups[1].Updates, 1)
}

func TestHistoryService_ShopHistoryGroupedByProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", "shop_owner")
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")
	env.seedProduct(t, "prod_2", "Rice")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.setPrice(t, "shop_1", "prod_2", 45)

	groups, err := env.history.GetShopHistory(ctx, "shop_1", usecase.HistoryRange{})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "prod_1", groups[0].ProductID)
	assert.Equal(t, "prod_2", groups[1].ProductID)
}

func TestHistoryService_StatsOverUpdates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", "shop_owner")
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")

	env.setPrice(t, "shop_1", "prod_1", 10)
	env.clock.advance(time.Hour)
	env.setPrice(t, "shop_1", "prod_1", 14)
	env.clock.advance(time.Hour)
	env.setPrice(t, "shop_1", "prod_1", 12)

	stats, err := env.history.GetPriceStats(ctx, "shop_1", "prod_1", usecase.HistoryRange{})
	require.NoError(t, err)
	assert.Equal(t, 10.0, stats.Min)
	assert.Equal(t, 14.0, stats.Max)
	assert.Equal(t, 12.0, stats.Avg)
	assert.Equal(t, 3, stats.Count)
}

func TestHistoryService_StatsZeroOnEmptyInput(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.history.GetPriceStats(context.Background(), "shop_missing", "prod_missing", usecase.HistoryRange{})
	require.NoError(t, err)
	assert.Equal(t, &usecase.PriceStats{}, stats)
}

func TestHistoryService_StatsSingleUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "user_o1", "shop_owner")
	env.seedShop(t, "shop_1", owner.ID, nil, nil)
	env.seedProduct(t, "prod_1", "Tomato")
	env.setPrice(t, "shop_1", "prod_1", 10)

	stats, err := env.history.GetPriceStats(ctx, "shop_1", "prod_1", usecase.HistoryRange{})
	require.NoError(t, err)
	assert.Equal(t, &usecase.PriceStats{Min: 10, Max: 10, Avg: 10, Count: 1}, stats)
}
