package repository

import (
	"context"

	"pricefield/internal/domain/entity"
)

// FavoriteRepository defines the interface for bookmark storage operations.
// The (user, type, item) tuple is unique; Save is idempotent on it.
type FavoriteRepository interface {
	// FindByUser retrieves all favorites for a user.
	FindByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)

	// Exists reports whether the (user, type, item) tuple is bookmarked.
	Exists(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) (bool, error)

	// Save stores a favorite; saving an already-bookmarked tuple keeps the
	// existing record.
	Save(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the (user, type, item) tuple. Deleting an absent tuple
	// is not an error.
	Delete(ctx context.Context, userID string, favType entity.FavoriteType, itemID string) error
}
