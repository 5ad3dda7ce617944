package entity

import (
	"time"
)

// PriceUpdate is an immutable, append-only log entry recording the price
// of a ShopProduct at a point in time. Entries are never edited; they are
// only deleted in bulk when their ShopProduct is removed.
type PriceUpdate struct {
	ID            string    `json:"id"`                   // Generated identifier, format "pu_<unix-ms>_<suffix>".
	ShopProductID string    `json:"shop_product_id"`      // The join row this entry belongs to.
	ShopID        string    `json:"shop_id"`              // Denormalized for history scans.
	ProductID     string    `json:"product_id"`           // Denormalized for history scans.
	Price         float64   `json:"price"`                // Price at the time of the update.
	ChangedBy     string    `json:"changed_by"`           // User who made the change.
	PaymentID     *string   `json:"payment_id,omitempty"` // Payment backing a paid listing update, when one applies.
	RecordedAt    time.Time `json:"recorded_at"`          // Timestamp of the update.
}
