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

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	clock        service.Clock
	idGen        service.IDGenerator
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Clock        service.Clock
	IDGen        service.IDGenerator
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		clock:        params.Clock,
		idGen:        params.IDGen,
	}
}

// AddFavorite marks an item as a favorite; adding the same item twice
// is a no-op
func (s *favoriteService) AddFavorite(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) error {
	if !favType.Valid() {
		return domainerrors.ErrInvalidFavoriteType
	}

	favorite := &entity.Favorite{
		ID:        s.idGen.NewID("fav"),
		UserID:    userID,
		Type:      favType,
		ItemID:    itemID,
		CreatedAt: s.clock.Now(),
	}

	if err := s.favoriteRepo.Save(ctx, favorite); err != nil {
		return errors.Wrap(err, "failed to save favorite")
	}

	return nil
}

// RemoveFavorite unmarks a favorite; removing an absent one is a no-op
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) error {
	if !favType.Valid() {
		return domainerrors.ErrInvalidFavoriteType
	}

	if err := s.favoriteRepo.Delete(ctx, userID, favType, itemID); err != nil {
		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// IsFavorite reports whether the user has favorited the item
func (s *favoriteService) IsFavorite(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) (bool, error) {
	exists, err := s.favoriteRepo.Exists(ctx, userID, favType, itemID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}

// ListFavorites retrieves the user's favorites, optionally filtered by
// type; an empty type returns all of them
func (s *favoriteService) ListFavorites(ctx context.Context, userID string, favType entity.FavoriteType) ([]*entity.Favorite, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}
	if favType == "" {
		return favorites, nil
	}

	filtered := make([]*entity.Favorite, 0, len(favorites))
	for _, f := range favorites {
		if f.Type == favType {
			filtered = append(filtered, f)
		}
	}

	return filtered, nil
}
