package kv

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	store *Store
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(store *Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

// FindByUser retrieves all favorites for a user.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	favorites := repo.loadAll(ctx)

	matched := make([]*entity.Favorite, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.UserID == userID {
			matched = append(matched, favorite)
		}
	}

	return matched, nil
}

// Exists reports whether the (user, type, item) tuple is bookmarked.
func (repo *favoriteRepository) Exists(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) (bool, error) {
	for _, favorite := range repo.loadAll(ctx) {
		if sameTuple(favorite, userID, favType, itemID) {
			return true, nil
		}
	}

	return false, nil
}

// Save stores a favorite. The (user, type, item) tuple is unique; saving
// an already-bookmarked tuple keeps the existing record.
func (repo *favoriteRepository) Save(ctx context.Context, favorite *entity.Favorite) error {
	favorites := repo.loadAll(ctx)

	for _, existing := range favorites {
		if sameTuple(existing, favorite.UserID, favorite.Type, favorite.ItemID) {
			return nil
		}
	}

	favorites = append(favorites, favorite)

	if err := repo.store.Set(ctx, favoritesKey, favorites); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save favorite")
	}

	return nil
}

// Delete removes the (user, type, item) tuple. Deleting an absent tuple is
// not an error.
func (repo *favoriteRepository) Delete(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) error {
	favorites := repo.loadAll(ctx)

	kept := make([]*entity.Favorite, 0, len(favorites))
	for _, favorite := range favorites {
		if !sameTuple(favorite, userID, favType, itemID) {
			kept = append(kept, favorite)
		}
	}
	if len(kept) == len(favorites) {
		return nil
	}

	if err := repo.store.Set(ctx, favoritesKey, kept); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to delete favorite")
	}

	return nil
}

func (repo *favoriteRepository) loadAll(ctx context.Context) []*entity.Favorite {
	var favorites []*entity.Favorite
	repo.store.Get(ctx, favoritesKey, &favorites)

	return favorites
}

func sameTuple(favorite *entity.Favorite, userID string, favType entity.FavoriteType, itemID string) bool {
	return favorite.UserID == userID && favorite.Type == favType && favorite.ItemID == itemID
}
