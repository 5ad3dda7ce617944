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

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for opening a shop
type CreateShopRequest struct {
	OwnerID   string   `json:"owner_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Category  string   `json:"category" validate:"required"`
	Address   string   `json:"address"`
	District  string   `json:"district"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdateShopRequest represents the request body for a partial shop update
type UpdateShopRequest struct {
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Address   *string  `json:"address,omitempty"`
	District  *string  `json:"district,omitempty"`
	City      *string  `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

// RateShopRequest represents the request body for rating a shop
type RateShopRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// ResolveQRRequest represents the request body for resolving scanned QR data
type ResolveQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// Create handles opening a new shop
func (h *ShopHandler) Create(c echo.Context) error {
	var req CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), usecase.CreateShopInput{
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Category:  entity.ShopCategory(req.Category),
		Address:   req.Address,
		District:  req.District,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop created successfully")
}

// Get handles retrieving a shop by id
func (h *ShopHandler) Get(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), c.Param("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// GetByOwner handles retrieving the shop owned by a user
func (h *ShopHandler) GetByOwner(c echo.Context) error {
	shop, err := h.shopUC.GetShopByOwner(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// List handles listing shops; ?active=true narrows to active ones
func (h *ShopHandler) List(c echo.Context) error {
	var (
		shops []*entity.Shop
		err   error
	)
	if c.QueryParam("active") == "true" {
		shops, err = h.shopUC.ListActiveShops(c.Request().Context())
	} else {
		shops, err = h.shopUC.ListShops(c.Request().Context())
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// Update handles a partial shop update
func (h *ShopHandler) Update(c echo.Context) error {
	var req UpdateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateShopInput{
		Name:      req.Name,
		Address:   req.Address,
		District:  req.District,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  req.IsActive,
	}
	if req.Category != nil {
		category := entity.ShopCategory(*req.Category)
		input.Category = &category
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), c.Param("shopId"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop updated successfully")
}

// Rate handles recording a shop rating
func (h *ShopHandler) Rate(c echo.Context) error {
	var req RateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shop, err := h.shopUC.RateShop(c.Request().Context(), c.Param("shopId"), req.Rating)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop rated successfully")
}

// Delete handles removing a shop
func (h *ShopHandler) Delete(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.Request().Context(), c.Param("shopId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted successfully")
}

// GenerateQR handles generating the shop's share QR code
func (h *ShopHandler) GenerateQR(c echo.Context) error {
	qrCode, err := h.shopUC.GenerateShopQR(c.Request().Context(), c.Param("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=shop-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ResolveQR handles resolving scanned QR data to a shop
func (h *ShopHandler) ResolveQR(c echo.Context) error {
	var req ResolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shop, err := h.shopUC.ResolveShopQR(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop resolved successfully")
}
