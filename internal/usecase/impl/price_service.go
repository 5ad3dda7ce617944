package impl

import (
	"context"
	"log/slog"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

type priceService struct {
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	shopProductRepo repository.ShopProductRepository
	priceUpdateRepo repository.PriceUpdateRepository
	publisher       service.EventPublisher
	clock           service.Clock
	idGen           service.IDGenerator
	logger          *slog.Logger
}

// PriceServiceParams holds dependencies for PriceService, injected by Fx.
type PriceServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	ProductRepo     repository.ProductRepository
	ShopProductRepo repository.ShopProductRepository
	PriceUpdateRepo repository.PriceUpdateRepository
	Publisher       service.EventPublisher
	Clock           service.Clock
	IDGen           service.IDGenerator
	Logger          *slog.Logger
}

// NewPriceService creates a new price write-path service instance
func NewPriceService(params PriceServiceParams) usecase.PriceUsecase {
	return &priceService{
		shopRepo:        params.ShopRepo,
		productRepo:     params.ProductRepo,
		shopProductRepo: params.ShopProductRepo,
		priceUpdateRepo: params.PriceUpdateRepo,
		publisher:       params.Publisher,
		clock:           params.Clock,
		idGen:           params.IDGen,
		logger:          params.Logger,
	}
}

// SetPrice upserts the shop's quote for a product, appends an
// immutable price update and publishes a price-change event.
// Publishing is best effort; a publish failure is logged, never
// surfaced to the caller.
func (s *priceService) SetPrice(ctx context.Context, input usecase.SetPriceInput) (*entity.ShopProduct, error) {
	if input.Price <= 0 {
		return nil, domainerrors.ErrInvalidPrice
	}

	if _, err := s.shopRepo.FindByID(ctx, input.ShopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	existing, err := s.shopProductRepo.FindByShopAndProduct(ctx, input.ShopID, input.ProductID)
	if err != nil && !errors.Is(err, repository.ErrShopProductNotFound) {
		return nil, errors.Wrap(err, "failed to find shop product")
	}

	now := s.clock.Now()
	price := input.Price

	var oldPrice *float64
	shopProduct := existing
	if shopProduct == nil {
		shopProduct = &entity.ShopProduct{
			ID:        s.idGen.NewID("sp"),
			ShopID:    input.ShopID,
			ProductID: input.ProductID,
			CreatedAt: now,
		}
	} else {
		oldPrice = shopProduct.CurrentPrice
	}
	shopProduct.CurrentPrice = &price
	shopProduct.IsAvailable = true
	shopProduct.LastUpdatedAt = now

	if err := s.shopProductRepo.Save(ctx, shopProduct); err != nil {
		return nil, errors.Wrap(err, "failed to save shop product")
	}

	update := &entity.PriceUpdate{
		ID:            s.idGen.NewID("pu"),
		ShopProductID: shopProduct.ID,
		ShopID:        input.ShopID,
		ProductID:     input.ProductID,
		Price:         input.Price,
		ChangedBy:     input.ChangedBy,
		PaymentID:     input.PaymentID,
		RecordedAt:    now,
	}
	if err := s.priceUpdateRepo.Append(ctx, update); err != nil {
		return nil, errors.Wrap(err, "failed to append price update")
	}

	event := &service.PriceChangeEvent{
		EventID:       s.idGen.NewID("evt"),
		ShopID:        input.ShopID,
		ProductID:     input.ProductID,
		ShopProductID: shopProduct.ID,
		OldPrice:      oldPrice,
		NewPrice:      input.Price,
		ChangedBy:     input.ChangedBy,
		RecordedAt:    now,
	}
	if err := s.publisher.PublishPriceChange(ctx, event); err != nil {
		s.logger.Warn("failed to publish price change event",
			slog.String("event_id", event.EventID),
			slog.String("shop_product_id", shopProduct.ID),
			slog.Any("error", err),
		)
	}

	return shopProduct, nil
}

// SetAvailability flips the in-stock flag without touching the price
func (s *priceService) SetAvailability(ctx context.Context, shopID, productID string, available bool) (*entity.ShopProduct, error) {
	shopProduct, err := s.shopProductRepo.FindByShopAndProduct(ctx, shopID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrShopProductNotFound) {
			return nil, domainerrors.ErrShopProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop product")
	}

	shopProduct.IsAvailable = available
	shopProduct.LastUpdatedAt = s.clock.Now()

	if err := s.shopProductRepo.Save(ctx, shopProduct); err != nil {
		return nil, errors.Wrap(err, "failed to save shop product")
	}

	return shopProduct, nil
}

// GetShopProduct retrieves a single shop's quote for a product
func (s *priceService) GetShopProduct(ctx context.Context, shopID, productID string) (*entity.ShopProduct, error) {
	shopProduct, err := s.shopProductRepo.FindByShopAndProduct(ctx, shopID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrShopProductNotFound) {
			return nil, domainerrors.ErrShopProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop product")
	}

	return shopProduct, nil
}

// ListShopProducts retrieves every quote a shop currently carries
func (s *priceService) ListShopProducts(ctx context.Context, shopID string) ([]*entity.ShopProduct, error) {
	shopProducts, err := s.shopProductRepo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop products")
	}

	return shopProducts, nil
}

// RemoveShopProduct delists a product from a shop. The join row's
// price updates go with it; catalog products and shops are untouched.
func (s *priceService) RemoveShopProduct(ctx context.Context, shopID, productID string) error {
	shopProduct, err := s.shopProductRepo.FindByShopAndProduct(ctx, shopID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrShopProductNotFound) {
			return domainerrors.ErrShopProductNotFound
		}

		return errors.Wrap(err, "failed to find shop product")
	}

	if err := s.shopProductRepo.DeleteByID(ctx, shopProduct.ID); err != nil {
		return errors.Wrap(err, "failed to delete shop product")
	}
	if err := s.priceUpdateRepo.DeleteByShopProduct(ctx, shopProduct.ID); err != nil {
		return errors.Wrap(err, "failed to delete price updates")
	}

	return nil
}
