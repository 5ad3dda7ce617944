package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"pricefield/config"
	"pricefield/internal/domain/entity"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/infra/persistence/kv"
	"pricefield/internal/infra/qrcode"
	"pricefield/internal/usecase"

	"github.com/stretchr/testify/require"
)

// fixedClock pins the current time so stamped timestamps are
// deterministic under test
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// seqIDGen hands out sequential ids per prefix
type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID(prefix string) string {
	g.n++

	return fmt.Sprintf("%s_%d", prefix, g.n)
}

// capturingPublisher records published events, optionally failing
type capturingPublisher struct {
	events []*service.PriceChangeEvent
	err    error
}

func (p *capturingPublisher) PublishPriceChange(_ context.Context, event *service.PriceChangeEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error {
	return nil
}

// testEnv wires every service against a shared in-memory store
type testEnv struct {
	clock     *fixedClock
	idGen     *seqIDGen
	publisher *capturingPublisher

	userRepo        repository.UserRepository
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	shopProductRepo repository.ShopProductRepository
	priceUpdateRepo repository.PriceUpdateRepository

	users         usecase.UserUsecase
	shops         usecase.ShopUsecase
	products      usecase.ProductUsecase
	prices        usecase.PriceUsecase
	comparison    usecase.ComparisonUsecase
	history       usecase.HistoryUsecase
	listing       usecase.ShopPriceListingUsecase
	subscriptions usecase.SubscriptionUsecase
	payments      usecase.PaymentUsecase
	favorites     usecase.FavoriteUsecase
	search        usecase.SearchUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store := kv.NewMemStore(logger)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	clock := &fixedClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	idGen := &seqIDGen{}
	publisher := &capturingPublisher{}

	cfg := &config.Config{
		Search:        &config.SearchConfig{HistoryLimit: 5},
		Subscriptions: &config.SubscriptionsConfig{PlanDays: 30},
	}

	userRepo := kv.NewUserRepository(store)
	shopRepo := kv.NewShopRepository(store)
	productRepo := kv.NewProductRepository(store)
	shopProductRepo := kv.NewShopProductRepository(store)
	priceUpdateRepo := kv.NewPriceUpdateRepository(store)
	subscriptionRepo := kv.NewSubscriptionRepository(store)
	paymentRepo := kv.NewPaymentRepository(store)
	favoriteRepo := kv.NewFavoriteRepository(store)
	settingsRepo := kv.NewSettingsRepository(store)

	qrService := qrcode.NewQRCodeService(256, "M")

	return &testEnv{
		clock:     clock,
		idGen:     idGen,
		publisher: publisher,

		userRepo:        userRepo,
		shopRepo:        shopRepo,
		productRepo:     productRepo,
		shopProductRepo: shopProductRepo,
		priceUpdateRepo: priceUpdateRepo,

		users: NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Clock:    clock,
			IDGen:    idGen,
		}),
		shops: NewShopService(ShopServiceParams{
			ShopRepo:      shopRepo,
			UserRepo:      userRepo,
			QRCodeService: qrService,
			Clock:         clock,
			IDGen:         idGen,
		}),
		products: NewProductService(ProductServiceParams{
			ProductRepo: productRepo,
			Clock:       clock,
			IDGen:       idGen,
		}),
		prices: NewPriceService(PriceServiceParams{
			ShopRepo:        shopRepo,
			ProductRepo:     productRepo,
			ShopProductRepo: shopProductRepo,
			PriceUpdateRepo: priceUpdateRepo,
			Publisher:       publisher,
			Clock:           clock,
			IDGen:           idGen,
			Logger:          logger,
		}),
		comparison: NewComparisonService(ComparisonServiceParams{
			ProductRepo:     productRepo,
			ShopRepo:        shopRepo,
			ShopProductRepo: shopProductRepo,
		}),
		history: NewHistoryService(HistoryServiceParams{
			ShopProductRepo: shopProductRepo,
			PriceUpdateRepo: priceUpdateRepo,
		}),
		listing: NewShopPriceService(ShopPriceServiceParams{
			ShopRepo:        shopRepo,
			ShopProductRepo: shopProductRepo,
		}),
		subscriptions: NewSubscriptionService(SubscriptionServiceParams{
			SubscriptionRepo: subscriptionRepo,
			PaymentRepo:      paymentRepo,
			UserRepo:         userRepo,
			Config:           cfg,
			Clock:            clock,
			IDGen:            idGen,
			Logger:           logger,
		}),
		payments: NewPaymentService(PaymentServiceParams{
			PaymentRepo: paymentRepo,
			UserRepo:    userRepo,
			Clock:       clock,
			IDGen:       idGen,
		}),
		favorites: NewFavoriteService(FavoriteServiceParams{
			FavoriteRepo: favoriteRepo,
			Clock:        clock,
			IDGen:        idGen,
		}),
		search: NewSearchService(SearchServiceParams{
			ProductRepo:  productRepo,
			ShopRepo:     shopRepo,
			SettingsRepo: settingsRepo,
			Config:       cfg,
			Logger:       logger,
		}),
	}
}

// seedUser stores a user directly through the repository
func (e *testEnv) seedUser(t *testing.T, id string, role entity.UserRole) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:        id,
		Name:      "User " + id,
		Phone:     fmt.Sprintf("09%08d", e.idGen.n+1000),
		Role:      role,
		CreatedAt: e.clock.Now(),
		UpdatedAt: e.clock.Now(),
	}
	require.NoError(t, e.userRepo.Save(context.Background(), user))

	return user
}

// seedShop stores an active shop directly through the repository
func (e *testEnv) seedShop(t *testing.T, id, ownerID string, lat, lng *float64) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		ID:        id,
		OwnerID:   ownerID,
		Name:      "Shop " + id,
		Category:  entity.ShopCategoryGrocery,
		Latitude:  lat,
		Longitude: lng,
		IsActive:  true,
		CreatedAt: e.clock.Now(),
		UpdatedAt: e.clock.Now(),
	}
	require.NoError(t, e.shopRepo.Save(context.Background(), shop))

	return shop
}

// seedProduct stores an active product directly through the repository
func (e *testEnv) seedProduct(t *testing.T, id, name string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:        id,
		Name:      name,
		Category:  entity.ProductCategoryVegetable,
		Unit:      "kg",
		IsActive:  true,
		CreatedAt: e.clock.Now(),
		UpdatedAt: e.clock.Now(),
	}
	require.NoError(t, e.productRepo.Save(context.Background(), product))

	return product
}

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
