package handler

import (
	"log/slog"
	"net/http"

	"pricefield/internal/delivery/http/response"
	"pricefield/internal/domain/entity"
	"pricefield/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for adding a product
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Unit     string `json:"unit" validate:"required"`
}

// UpdateProductRequest represents the request body for a partial product update
type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Create handles adding a product to the catalog
func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:     req.Name,
		Category: entity.ProductCategory(req.Category),
		Unit:     req.Unit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Get handles retrieving a product by id
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// List handles listing products; ?active=true narrows to active ones
func (h *ProductHandler) List(c echo.Context) error {
	var (
		products []*entity.Product
		err      error
	)
	if c.QueryParam("active") == "true" {
		products, err = h.productUC.ListActiveProducts(c.Request().Context())
	} else {
		products, err = h.productUC.ListProducts(c.Request().Context())
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Update handles a partial product update
func (h *ProductHandler) Update(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateProductInput{
		Name:     req.Name,
		Unit:     req.Unit,
		IsActive: req.IsActive,
	}
	if req.Category != nil {
		category := entity.ProductCategory(*req.Category)
		input.Category = &category
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("productId"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Deactivate handles hiding a product from catalog listings
func (h *ProductHandler) Deactivate(c echo.Context) error {
	if err := h.productUC.DeactivateProduct(c.Request().Context(), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deactivated successfully")
}
