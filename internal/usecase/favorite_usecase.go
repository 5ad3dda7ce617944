package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// FavoriteUsecase defines the interface for user favorites
type FavoriteUsecase interface {
	// AddFavorite marks an item as a favorite; adding the same item
	// twice is a no-op
	AddFavorite(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) error

	// RemoveFavorite unmarks a favorite; removing an absent one is a
	// no-op
	RemoveFavorite(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) error

	// IsFavorite reports whether the user has favorited the item
	IsFavorite(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) (bool, error)

	// ListFavorites retrieves the user's favorites, optionally
	// filtered by type (empty type means all)
	ListFavorites(ctx context.Context, userID string, favType entity.FavoriteType) ([]*entity.Favorite, error)
}
