package kv

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// shopProductRepository implements the repository.ShopProductRepository interface.
type shopProductRepository struct {
	store *Store
}

// NewShopProductRepository is the constructor for shopProductRepository.
func NewShopProductRepository(store *Store) repository.ShopProductRepository {
	return &shopProductRepository{store: store}
}

// FindAll retrieves every join row.
func (repo *shopProductRepository) FindAll(ctx context.Context) ([]*entity.ShopProduct, error) {
	var rows []*entity.ShopProduct
	repo.store.Get(ctx, shopProductsKey, &rows)

	return rows, nil
}

// FindByID retrieves a join row by its unique id.
func (repo *shopProductRepository) FindByID(ctx context.Context, id string) (*entity.ShopProduct, error) {
	rows, _ := repo.FindAll(ctx)
	for _, row := range rows {
		if row.ID == id {
			return row, nil
		}
	}

	return nil, repository.ErrShopProductNotFound
}

// FindByShopAndProduct retrieves the join row for the composite key.
func (repo *shopProductRepository) FindByShopAndProduct(ctx context.Context, shopID, productID string) (*entity.ShopProduct, error) {
	rows, _ := repo.FindAll(ctx)
	for _, row := range rows {
		if row.ShopID == shopID && row.ProductID == productID {
			return row, nil
		}
	}

	return nil, repository.ErrShopProductNotFound
}

// FindByShop retrieves all join rows for a shop.
func (repo *shopProductRepository) FindByShop(ctx context.Context, shopID string) ([]*entity.ShopProduct, error) {
	rows, _ := repo.FindAll(ctx)

	matched := make([]*entity.ShopProduct, 0, len(rows))
	for _, row := range rows {
		if row.ShopID == shopID {
			matched = append(matched, row)
		}
	}

	return matched, nil
}

// FindByProduct retrieves all join rows for a product.
func (repo *shopProductRepository) FindByProduct(ctx context.Context, productID string) ([]*entity.ShopProduct, error) {
	rows, _ := repo.FindAll(ctx)

	matched := make([]*entity.ShopProduct, 0, len(rows))
	for _, row := range rows {
		if row.ProductID == productID {
			matched = append(matched, row)
		}
	}

	return matched, nil
}

// Save upserts a join row. Uniqueness of the (shop, product) pair is
// enforced here: an existing row for the pair is replaced regardless of id.
func (repo *shopProductRepository) Save(ctx context.Context, shopProduct *entity.ShopProduct) error {
	rows, _ := repo.FindAll(ctx)

	replaced := false
	for i, existing := range rows {
		if existing.ID == shopProduct.ID ||
			(existing.ShopID == shopProduct.ShopID && existing.ProductID == shopProduct.ProductID) {
			rows[i] = shopProduct
			replaced = true

			break
		}
	}
	if !replaced {
		rows = append(rows, shopProduct)
	}

	if err := repo.store.Set(ctx, shopProductsKey, rows); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save shop product")
	}

	return nil
}

// DeleteByID removes a join row by id.
func (repo *shopProductRepository) DeleteByID(ctx context.Context, id string) error {
	rows, _ := repo.FindAll(ctx)

	kept := make([]*entity.ShopProduct, 0, len(rows))
	for _, row := range rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	if len(kept) == len(rows) {
		return repository.ErrShopProductNotFound
	}

	if err := repo.store.Set(ctx, shopProductsKey, kept); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to delete shop product")
	}

	return nil
}
