package entity

import (
	"time"
)

// FavoriteType enumerates what kind of item a favorite bookmarks.
type FavoriteType string

const (
	FavoriteTypeProduct FavoriteType = "product"
	FavoriteTypeShop    FavoriteType = "shop"
)

// Valid reports whether the favorite type is known.
func (t FavoriteType) Valid() bool {
	return t == FavoriteTypeProduct || t == FavoriteTypeShop
}

// Favorite marks a product or shop as bookmarked by a user. The
// (user_id, type, item_id) tuple is unique; saving the same tuple twice
// keeps a single record.
type Favorite struct {
	ID        string       `json:"id"`         // Generated identifier, format "fav_<unix-ms>_<suffix>".
	UserID    string       `json:"user_id"`    // The bookmarking user.
	Type      FavoriteType `json:"type"`       // Whether ItemID refers to a product or a shop.
	ItemID    string       `json:"item_id"`    // The bookmarked product or shop id.
	CreatedAt time.Time    `json:"created_at"` // Timestamp of the bookmark.
}
