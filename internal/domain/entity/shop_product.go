package entity

import (
	"time"
)

// ShopProduct links a shop to a catalog product and carries the shop's
// current price for it. At most one ShopProduct exists per
// (shop_id, product_id) pair; saves replace the existing row.
type ShopProduct struct {
	ID            string    `json:"id"`              // Generated identifier, format "sp_<unix-ms>_<suffix>".
	ShopID        string    `json:"shop_id"`         // The shop publishing the price.
	ProductID     string    `json:"product_id"`      // The catalog product being priced.
	CurrentPrice  *float64  `json:"current_price"`   // Current price per product unit; nil when the shop has listed but not priced it.
	IsAvailable   bool      `json:"is_available"`    // Whether the product is currently in stock at this shop.
	LastUpdatedAt time.Time `json:"last_updated_at"` // Timestamp of the last price or availability change.
	CreatedAt     time.Time `json:"created_at"`      // Timestamp of the first listing.
}
