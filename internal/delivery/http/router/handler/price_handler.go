package handler

import (
	"log/slog"
	"net/http"

	"pricefield/internal/delivery/http/response"
	"pricefield/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PriceHandlerParams holds dependencies for PriceHandler, injected by Fx.
type PriceHandlerParams struct {
	fx.In

	PriceUC usecase.PriceUsecase
	Logger  *slog.Logger
}

// PriceHandler holds dependencies for the shop-side price write path
type PriceHandler struct {
	priceUC usecase.PriceUsecase
	logger  *slog.Logger
}

// NewPriceHandler is the constructor for PriceHandler
func NewPriceHandler(params PriceHandlerParams) *PriceHandler {
	return &PriceHandler{
		priceUC: params.PriceUC,
		logger:  params.Logger,
	}
}

// SetPriceRequest represents the request body for quoting a price
type SetPriceRequest struct {
	Price     float64 `json:"price" validate:"required,gt=0"`
	ChangedBy string  `json:"changed_by" validate:"required"`
	PaymentID *string `json:"payment_id,omitempty"`
}

// SetAvailabilityRequest represents the request body for the stock flag
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// SetPrice handles quoting a product price at a shop
func (h *PriceHandler) SetPrice(c echo.Context) error {
	var req SetPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shopProduct, err := h.priceUC.SetPrice(c.Request().Context(), usecase.SetPriceInput{
		ShopID:    c.Param("shopId"),
		ProductID: c.Param("productId"),
		Price:     req.Price,
		ChangedBy: req.ChangedBy,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shopProduct, "Price updated successfully")
}

// SetAvailability handles flipping the in-stock flag
func (h *PriceHandler) SetAvailability(c echo.Context) error {
	var req SetAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shopProduct, err := h.priceUC.SetAvailability(c.Request().Context(), c.Param("shopId"), c.Param("productId"), *req.IsAvailable)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shopProduct, "Availability updated successfully")
}

// GetShopProduct handles retrieving a single quote
func (h *PriceHandler) GetShopProduct(c echo.Context) error {
	shopProduct, err := h.priceUC.GetShopProduct(c.Request().Context(), c.Param("shopId"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shopProduct, "Shop product retrieved successfully")
}

// ListShopProducts handles listing every quote a shop carries
func (h *PriceHandler) ListShopProducts(c echo.Context) error {
	shopProducts, err := h.priceUC.ListShopProducts(c.Request().Context(), c.Param("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shopProducts, "Shop products retrieved successfully")
}

// RemoveShopProduct handles delisting a product from a shop
func (h *PriceHandler) RemoveShopProduct(c echo.Context) error {
	if err := h.priceUC.RemoveShopProduct(c.Request().Context(), c.Param("shopId"), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop product removed successfully")
}
