package service

import (
	"context"
	"time"
)

// PriceChangeEvent represents a published price update, consumed by
// downstream workers (e.g. to notify users who favorited the shop).
type PriceChangeEvent struct {
	EventID       string    `json:"event_id"`
	ShopID        string    `json:"shop_id"`
	ProductID     string    `json:"product_id"`
	ShopProductID string    `json:"shop_product_id"`
	OldPrice      *float64  `json:"old_price,omitempty"` // Nil on the first price for a listing.
	NewPrice      float64   `json:"new_price"`
	ChangedBy     string    `json:"changed_by"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPriceChange publishes a price-change event for async processing
	PublishPriceChange(ctx context.Context, event *PriceChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
