package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// SubscribeInput carries the fields needed to start a premium
// subscription
type SubscribeInput struct {
	UserID    string
	Plan      string
	Amount    float64
	AutoRenew bool
}

// SubscriptionUsecase defines the interface for premium subscription
// use cases
type SubscriptionUsecase interface {
	// Subscribe starts a subscription for the user, cancelling any
	// prior active one, recording the payment and flagging the user
	// premium until the plan expiry
	Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscription, error)

	// CancelSubscription cancels the user's active subscription and
	// clears the premium flag
	CancelSubscription(ctx context.Context, userID string) error

	// GetActiveSubscription retrieves the user's active subscription
	GetActiveSubscription(ctx context.Context, userID string) (*entity.Subscription, error)

	// ListUserSubscriptions retrieves the user's subscriptions, newest
	// first
	ListUserSubscriptions(ctx context.Context, userID string) ([]*entity.Subscription, error)

	// ExpireDue marks active subscriptions past their expiry as
	// expired and clears the premium flag on their users; returns the
	// number of subscriptions expired
	ExpireDue(ctx context.Context) (int, error)
}
