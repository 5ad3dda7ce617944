package repository

import (
	"context"

	"pricefield/internal/domain/entity"
	"pricefield/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog storage operations.
type ProductRepository interface {
	// FindAll retrieves every catalog product.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a product by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindActive retrieves all active catalog products.
	FindActive(ctx context.Context) ([]*entity.Product, error)

	// Save upserts a product by id.
	Save(ctx context.Context, product *entity.Product) error
}
