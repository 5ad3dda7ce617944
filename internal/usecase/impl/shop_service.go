package impl

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

type shopService struct {
	shopRepo      repository.ShopRepository
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	clock         service.Clock
	idGen         service.IDGenerator
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo      repository.ShopRepository
	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Clock         service.Clock
	IDGen         service.IDGenerator
}

// NewShopService creates a new shop service instance
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo:      params.ShopRepo,
		userRepo:      params.UserRepo,
		qrcodeService: params.QRCodeService,
		clock:         params.Clock,
		idGen:         params.IDGen,
	}
}

// CreateShop opens a new shop; an owner may hold at most one shop
func (s *shopService) CreateShop(ctx context.Context, input usecase.CreateShopInput) (*entity.Shop, error) {
	owner, err := s.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}
	if owner.Role != entity.RoleShopOwner && owner.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrNotShopOwner
	}

	existing, err := s.shopRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrShopNotFound) {
		return nil, errors.Wrap(err, "failed to find shop by owner")
	}
	if existing != nil {
		return nil, domainerrors.ErrShopAlreadyExists
	}

	now := s.clock.Now()
	shop := &entity.Shop{
		ID:        s.idGen.NewID("shop"),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Category:  input.Category,
		Address:   input.Address,
		District:  input.District,
		City:      input.City,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to save shop")
	}

	return shop, nil
}

// GetShop retrieves a shop by id
func (s *shopService) GetShop(ctx context.Context, shopID string) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return shop, nil
}

// GetShopByOwner retrieves the shop owned by the given user
func (s *shopService) GetShopByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner")
	}

	return shop, nil
}

// ListShops retrieves all shops
func (s *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// ListActiveShops retrieves shops that are currently active
func (s *shopService) ListActiveShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active shops")
	}

	return shops, nil
}

// UpdateShop applies a partial update to a shop; nil input fields keep
// their stored values
func (s *shopService) UpdateShop(ctx context.Context, shopID string, input usecase.UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Category != nil {
		shop.Category = *input.Category
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.District != nil {
		shop.District = *input.District
	}
	if input.City != nil {
		shop.City = *input.City
	}
	if input.Latitude != nil {
		shop.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		shop.Longitude = input.Longitude
	}
	if input.IsActive != nil {
		shop.IsActive = *input.IsActive
	}
	shop.UpdatedAt = s.clock.Now()

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to save shop")
	}

	return shop, nil
}

// RateShop records a 1-5 rating, recomputing the running average and
// the goodwill score (average scaled to 0-100)
func (s *shopService) RateShop(ctx context.Context, shopID string, rating int) (*entity.Shop, error) {
	if rating < 1 || rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	total := shop.TotalRatings + 1
	shop.AverageRating = (shop.AverageRating*float64(shop.TotalRatings) + float64(rating)) / float64(total)
	shop.TotalRatings = total
	shop.GoodwillScore = shop.AverageRating * 20
	shop.UpdatedAt = s.clock.Now()

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to save shop")
	}

	return shop, nil
}

// DeleteShop removes a shop by id
func (s *shopService) DeleteShop(ctx context.Context, shopID string) error {
	if err := s.shopRepo.DeleteByID(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}

		return errors.Wrap(err, "failed to delete shop")
	}

	return nil
}

// GenerateShopQR builds a shareable QR code image for a shop
func (s *shopService) GenerateShopQR(ctx context.Context, shopID string) ([]byte, error) {
	shop, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateShopQR(shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

// ResolveShopQR parses scanned QR data and returns the shop it points to
func (s *shopService) ResolveShopQR(ctx context.Context, qrData string) (*entity.Shop, error) {
	shopID, err := s.qrcodeService.ParseShopQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.GetShop(ctx, shopID)
}
