package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// CreateProductInput carries the fields needed to add a product to the
// catalog
type CreateProductInput struct {
	Name     string
	Category entity.ProductCategory
	Unit     string
}

// UpdateProductInput carries optional product fields; nil means keep
// the stored value
type UpdateProductInput struct {
	Name     *string
	Category *entity.ProductCategory
	Unit     *string
	IsActive *bool
}

// ProductUsecase defines the interface for product catalog use cases
type ProductUsecase interface {
	// CreateProduct adds a product to the catalog
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by id
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListProducts retrieves all products
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListActiveProducts retrieves products that are currently active
	ListActiveProducts(ctx context.Context) ([]*entity.Product, error)

	// UpdateProduct applies a partial update to a product
	UpdateProduct(ctx context.Context, productID string, input UpdateProductInput) (*entity.Product, error)

	// DeactivateProduct hides a product from catalog listings without
	// deleting its price records
	DeactivateProduct(ctx context.Context, productID string) error
}
