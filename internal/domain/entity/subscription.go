package entity

import (
	"time"
)

// SubscriptionStatus enumerates the lifecycle states of a premium plan.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// Subscription is one user's premium-plan record. Creating a new
// subscription for a user soft-cancels any prior active one; records are
// never deleted.
type Subscription struct {
	ID        string             `json:"id"`         // Generated identifier, format "sub_<unix-ms>_<suffix>".
	UserID    string             `json:"user_id"`    // The subscribing user.
	Plan      string             `json:"plan"`       // Plan name, e.g. "premium_monthly".
	Status    SubscriptionStatus `json:"status"`     // Current lifecycle state.
	StartsAt  time.Time          `json:"starts_at"`  // Beginning of the paid period.
	ExpiresAt time.Time          `json:"expires_at"` // End of the paid period.
	Amount    float64            `json:"amount"`     // Amount paid for the period.
	AutoRenew bool               `json:"auto_renew"` // Whether the plan renews automatically.
	CreatedAt time.Time          `json:"created_at"` // Timestamp of creation.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last state change.
}
