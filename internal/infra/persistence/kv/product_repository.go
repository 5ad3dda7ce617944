package kv

import (
	"context"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	store *Store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

// FindAll retrieves every catalog product.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	repo.store.Get(ctx, productsKey, &products)

	return products, nil
}

// FindByID retrieves a product by its unique id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	products, _ := repo.FindAll(ctx)
	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// FindActive retrieves all active catalog products.
func (repo *productRepository) FindActive(ctx context.Context) ([]*entity.Product, error) {
	products, _ := repo.FindAll(ctx)

	active := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.IsActive {
			active = append(active, product)
		}
	}

	return active, nil
}

// Save upserts a product by id via linear scan-and-replace.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	products, _ := repo.FindAll(ctx)

	replaced := false
	for i, existing := range products {
		if existing.ID == product.ID {
			products[i] = product
			replaced = true

			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	if err := repo.store.Set(ctx, productsKey, products); err != nil {
		return domainerrors.NewStorageWriteError(err, "failed to save product")
	}

	return nil
}
