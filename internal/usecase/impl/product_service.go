package impl

import (
	"context"
	"strings"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	clock       service.Clock
	idGen       service.IDGenerator
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Clock       service.Clock
	IDGen       service.IDGenerator
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		clock:       params.Clock,
		idGen:       params.IDGen,
	}
}

// CreateProduct adds a product to the catalog
func (s *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Unit) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and unit are required")
	}
	if !input.Category.Valid() {
		return nil, domainerrors.ErrInvalidProductCategory
	}

	now := s.clock.Now()
	product := &entity.Product{
		ID:        s.idGen.NewID("prod"),
		Name:      input.Name,
		Category:  input.Category,
		Unit:      input.Unit,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return product, nil
}

// GetProduct retrieves a product by id
func (s *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// ListProducts retrieves all products
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListActiveProducts retrieves products that are currently active
func (s *productService) ListActiveProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product; nil input
// fields keep their stored values
func (s *productService) UpdateProduct(ctx context.Context, productID string, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, domainerrors.ErrInvalidProductCategory
		}
		product.Category = *input.Category
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.UpdatedAt = s.clock.Now()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return product, nil
}

// DeactivateProduct hides a product from catalog listings. Existing
// price records are kept.
func (s *productService) DeactivateProduct(ctx context.Context, productID string) error {
	inactive := false
	_, err := s.UpdateProduct(ctx, productID, usecase.UpdateProductInput{IsActive: &inactive})

	return err
}
