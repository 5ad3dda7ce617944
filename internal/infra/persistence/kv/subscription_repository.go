package kv

import (
	"context"
	"sort"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	store *Store
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(store *Store) repository.SubscriptionRepository {
	return &subscriptionRepository{store: store}
}

// FindAll retrieves every subscription record.
func (repo *subscriptionRepository) FindAll(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptions []*entity.Subscription
	repo.store.Get(ctx, subscriptionsKey, &subscriptions)

	return subscriptions, nil
}

// FindByID retrieves a subscription by its unique id.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id string) (*entity.Subscription, error) {
	subscriptions, _ := repo.FindAll(ctx)
	for _, subscription := range subscriptions {
		if subscription.ID == id {
			return subscription, nil
		}
	}

	return nil, repository.ErrSubscriptionNotFound
}

// FindByUser retrieves all subscriptions for a user, newest first.
func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	subscriptions, _ := repo.FindAll(ctx)

	matched := make([]*entity.Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.UserID == userID {
			matched = append(matched, subscription)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

// FindActiveByUser retrieves the user's active subscription, if any.
func (repo *subscriptionRepository) FindActiveByUser(ctx context.Context, userID string) (*entity.Subscription, error) {
	subscriptions, _ := repo.FindAll(ctx)
	for _, subscription := range subscriptions {
		if subscription.UserID == userID && subscription.Status == entity.SubscriptionStatusActive {
			return subscription, nil
		}
	}

	return nil, repository.ErrSubscriptionNotFound
}

// Save upserts a subscription by id via linear scan-and-replace.
func (repo *subscriptionRepository) Save(ctx context.Context, subscription *entity.Subscription) error {
	subscriptions, _ := repo.FindAll(ctx)

	replaced := false
	for i, existing := range subscriptions {
		if existing.ID == subscription.ID {
			subscriptions[i] = subscription
			replaced = true

			break
		}
	}
	if !replaced {
		subscriptions = append(subscriptions, subscription)
	}

	if err := repo.store.Set(ctx, subscriptionsKey, subscriptions); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save subscription")
	}

	return nil
}
