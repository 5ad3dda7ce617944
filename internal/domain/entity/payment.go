package entity

import (
	"time"
)

// PaymentType enumerates what a payment was for.
type PaymentType string

const (
	PaymentTypeSubscription PaymentType = "subscription"
	PaymentTypeListingFee   PaymentType = "listing_fee"
	PaymentTypeOther        PaymentType = "other"
)

// Payment is an append-only transaction record tied to a user. Payments
// feed invoice generation and are never mutated after creation.
type Payment struct {
	ID        string      `json:"id"`         // Generated identifier, format "pay_<unix-ms>_<suffix>".
	UserID    string      `json:"user_id"`    // The paying user.
	Type      PaymentType `json:"type"`       // What the payment was for.
	Amount    float64     `json:"amount"`     // Amount paid.
	Currency  string      `json:"currency"`   // ISO currency code.
	Reference string      `json:"reference"`  // Free-form reference, e.g. the subscription id.
	CreatedAt time.Time   `json:"created_at"` // Timestamp of the transaction.
}
