// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity in the system. Every actor, whether browsing
// prices or running a shop, owns exactly one User record.
type User struct {
	ID               string     `json:"id"`                 // Generated identifier, format "user_<unix-ms>_<suffix>".
	Name             string     `json:"name"`               // Display name.
	Phone            string     `json:"phone"`              // Login/contact phone number; unique across users.
	Email            string     `json:"email,omitempty"`    // Optional contact email.
	Role             UserRole   `json:"role"`               // Role of this account (end user, shop owner, admin, staff).
	IsPremium        bool       `json:"is_premium"`         // Whether the user currently holds a premium subscription.
	PremiumExpiresAt *time.Time `json:"premium_expires_at"` // Expiry of the premium subscription; nil when never subscribed.
	CreatedAt        time.Time  `json:"created_at"`         // Timestamp of registration.
	UpdatedAt        time.Time  `json:"updated_at"`         // Timestamp of the last modification.
}
