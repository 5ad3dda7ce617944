package entity

import (
	"time"
)

// ShopCategory enumerates the kinds of shops that publish prices.
type ShopCategory string

const (
	ShopCategoryGrocery       ShopCategory = "grocery"
	ShopCategoryFarmersMarket ShopCategory = "farmers_market"
	ShopCategoryWholesale     ShopCategory = "wholesale"
	ShopCategorySupermarket   ShopCategory = "supermarket"
	ShopCategoryOther         ShopCategory = "other"
)

// Valid reports whether the category is one of the known shop categories.
func (c ShopCategory) Valid() bool {
	switch c {
	case ShopCategoryGrocery, ShopCategoryFarmersMarket, ShopCategoryWholesale,
		ShopCategorySupermarket, ShopCategoryOther:
		return true
	default:
		return false
	}
}

// Shop is a storefront owned by exactly one shop-owner user. A shop
// publishes its own price per product through ShopProduct join rows.
type Shop struct {
	ID            string       `json:"id"`             // Generated identifier, format "shop_<unix-ms>_<suffix>".
	OwnerID       string       `json:"owner_id"`       // The user who owns this shop; one active shop per owner.
	Name          string       `json:"name"`           // Public shop name.
	Category      ShopCategory `json:"category"`       // Kind of shop.
	Address       string       `json:"address"`        // Street address.
	District      string       `json:"district"`       // Administrative district.
	City          string       `json:"city"`           // City.
	Latitude      *float64     `json:"latitude"`       // Shop coordinate; nil when the owner never provided one.
	Longitude     *float64     `json:"longitude"`      // Shop coordinate; nil when the owner never provided one.
	AverageRating float64      `json:"average_rating"` // Arithmetic mean of all ratings received.
	TotalRatings  int          `json:"total_ratings"`  // Number of ratings received.
	GoodwillScore float64      `json:"goodwill_score"` // Derived reputation score, 0-100.
	IsActive      bool         `json:"is_active"`      // Inactive shops are hidden from listings and comparisons.
	CreatedAt     time.Time    `json:"created_at"`     // Timestamp of creation.
	UpdatedAt     time.Time    `json:"updated_at"`     // Timestamp of the last modification.
}

// HasCoordinates reports whether the shop carries a usable coordinate pair.
func (s *Shop) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
