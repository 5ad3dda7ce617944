package repository

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for premium-plan storage operations.
type SubscriptionRepository interface {
	// FindAll retrieves every subscription record.
	FindAll(ctx context.Context) ([]*entity.Subscription, error)

	// FindByID retrieves a subscription by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Subscription, error)

	// FindByUser retrieves all subscriptions for a user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Subscription, error)

	// FindActiveByUser retrieves the user's active subscription, if any.
	FindActiveByUser(ctx context.Context, userID string) (*entity.Subscription, error)

	// Save upserts a subscription by id.
	Save(ctx context.Context, subscription *entity.Subscription) error
}
