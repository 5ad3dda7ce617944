package kv

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	store *Store
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(store *Store) repository.ShopRepository {
	return &shopRepository{store: store}
}

// FindAll retrieves every stored shop.
func (repo *shopRepository) FindAll(ctx context.Context) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	repo.store.Get(ctx, shopsKey, &shops)

	return shops, nil
}

// FindByID retrieves a shop by its unique id.
func (repo *shopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	shops, _ := repo.FindAll(ctx)
	for _, shop := range shops {
		if shop.ID == id {
			return shop, nil
		}
	}

	return nil, repository.ErrShopNotFound
}

// FindByOwner retrieves the first shop owned by the given user.
func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	shops, _ := repo.FindAll(ctx)
	for _, shop := range shops {
		if shop.OwnerID == ownerID {
			return shop, nil
		}
	}

	return nil, repository.ErrShopNotFound
}

// FindActive retrieves all active shops.
func (repo *shopRepository) FindActive(ctx context.Context) ([]*entity.Shop, error) {
	shops, _ := repo.FindAll(ctx)

	active := make([]*entity.Shop, 0, len(shops))
	for _, shop := range shops {
		if shop.IsActive {
			active = append(active, shop)
		}
	}

	return active, nil
}

// Save upserts a shop by id via linear scan-and-replace.
func (repo *shopRepository) Save(ctx context.Context, shop *entity.Shop) error {
	shops, _ := repo.FindAll(ctx)

	replaced := false
	for i, existing := range shops {
		if existing.ID == shop.ID {
			shops[i] = shop
			replaced = true

			break
		}
	}
	if !replaced {
		shops = append(shops, shop)
	}

	if err := repo.store.Set(ctx, shopsKey, shops); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save shop")
	}

	return nil
}

// DeleteByID removes a shop by id.
func (repo *shopRepository) DeleteByID(ctx context.Context, id string) error {
	shops, _ := repo.FindAll(ctx)

	kept := make([]*entity.Shop, 0, len(shops))
	for _, shop := range shops {
		if shop.ID != id {
			kept = append(kept, shop)
		}
	}
	if len(kept) == len(shops) {
		return repository.ErrShopNotFound
	}

	if err := repo.store.Set(ctx, shopsKey, kept); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to delete shop")
	}

	return nil
}
