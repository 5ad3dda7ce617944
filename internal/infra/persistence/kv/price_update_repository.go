package kv

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// priceUpdateRepository implements the repository.PriceUpdateRepository interface.
type priceUpdateRepository struct {
	store *Store
}

// NewPriceUpdateRepository is the constructor for priceUpdateRepository.
func NewPriceUpdateRepository(store *Store) repository.PriceUpdateRepository {
	return &priceUpdateRepository{store: store}
}

// FindAll retrieves every price update.
func (repo *priceUpdateRepository) FindAll(ctx context.Context) ([]*entity.PriceUpdate, error) {
	var updates []*entity.PriceUpdate
	repo.store.Get(ctx, priceUpdatesKey, &updates)

	return updates, nil
}

// FindByShopProduct retrieves every update recorded for one join row.
func (repo *priceUpdateRepository) FindByShopProduct(ctx context.Context, shopProductID string) ([]*entity.PriceUpdate, error) {
	updates, _ := repo.FindAll(ctx)

	matched := make([]*entity.PriceUpdate, 0, len(updates))
	for _, update := range updates {
		if update.ShopProductID == shopProductID {
			matched = append(matched, update)
		}
	}

	return matched, nil
}

// FindByShopProducts retrieves every update recorded for a set of join rows.
func (repo *priceUpdateRepository) FindByShopProducts(ctx context.Context, shopProductIDs []string) ([]*entity.PriceUpdate, error) {
	if len(shopProductIDs) == 0 {
		return []*entity.PriceUpdate{}, nil
	}

	wanted := make(map[string]struct{}, len(shopProductIDs))
	for _, id := range shopProductIDs {
		wanted[id] = struct{}{}
	}

	updates, _ := repo.FindAll(ctx)

	matched := make([]*entity.PriceUpdate, 0, len(updates))
	for _, update := range updates {
		if _, ok := wanted[update.ShopProductID]; ok {
			matched = append(matched, update)
		}
	}

	return matched, nil
}

// Append stores a new immutable log entry.
func (repo *priceUpdateRepository) Append(ctx context.Context, update *entity.PriceUpdate) error {
	updates, _ := repo.FindAll(ctx)
	updates = append(updates, update)

	if err := repo.store.Set(ctx, priceUpdatesKey, updates); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to append price update")
	}

	return nil
}

// DeleteByShopProduct bulk-deletes every update for one join row.
func (repo *priceUpdateRepository) DeleteByShopProduct(ctx context.Context, shopProductID string) error {
	updates, _ := repo.FindAll(ctx)

	kept := make([]*entity.PriceUpdate, 0, len(updates))
	for _, update := range updates {
		if update.ShopProductID != shopProductID {
			kept = append(kept, update)
		}
	}

	if err := repo.store.Set(ctx, priceUpdatesKey, kept); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to delete price updates")
	}

	return nil
}
