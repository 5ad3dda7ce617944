package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pricefield/internal/delivery/http/response"
	"pricefield/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComparisonHandlerParams holds dependencies for ComparisonHandler, injected by Fx.
type ComparisonHandlerParams struct {
	fx.In

	ComparisonUC usecase.ComparisonUsecase
	HistoryUC    usecase.HistoryUsecase
	ListingUC    usecase.ShopPriceListingUsecase
	Logger       *slog.Logger
}

// ComparisonHandler holds dependencies for the buyer-facing price views
type ComparisonHandler struct {
	comparisonUC usecase.ComparisonUsecase
	historyUC    usecase.HistoryUsecase
	listingUC    usecase.ShopPriceListingUsecase
	logger       *slog.Logger
}

// NewComparisonHandler is the constructor for ComparisonHandler
func NewComparisonHandler(params ComparisonHandlerParams) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonUC: params.ComparisonUC,
		historyUC:    params.HistoryUC,
		listingUC:    params.ListingUC,
		logger:       params.Logger,
	}
}

// CompareRequest represents the request body for a price comparison.
// Empty id lists are allowed; the comparison yields an empty grid.
type CompareRequest struct {
	ProductIDs []string `json:"product_ids"`
	ShopIDs    []string `json:"shop_ids"`
}

// Compare handles building the price comparison grid
func (h *ComparisonHandler) Compare(c echo.Context) error {
	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comparison input")
	}

	result, err := h.comparisonUC.ComparePrices(c.Request().Context(), req.ProductIDs, req.ShopIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Comparison built successfully")
}

// ProductHistory handles a product's history across shops
func (h *ComparisonHandler) ProductHistory(c echo.Context) error {
	r, err := parseHistoryRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	groups, err := h.historyUC.GetProductHistory(c.Request().Context(), c.Param("productId"), r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Price history retrieved successfully")
}

// ShopHistory handles a shop's history across its products
func (h *ComparisonHandler) ShopHistory(c echo.Context) error {
	r, err := parseHistoryRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	groups, err := h.historyUC.GetShopHistory(c.Request().Context(), c.Param("shopId"), r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Price history retrieved successfully")
}

// ShopProductHistory handles the flat history of one product at one shop
func (h *ComparisonHandler) ShopProductHistory(c echo.Context) error {
	r, err := parseHistoryRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	updates, err := h.historyUC.GetShopProductHistory(c.Request().Context(), c.Param("shopId"), c.Param("productId"), r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updates, "Price history retrieved successfully")
}

// ShopProductStats handles min/max/avg/count for one product at one shop
func (h *ComparisonHandler) ShopProductStats(c echo.Context) error {
	r, err := parseHistoryRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	stats, err := h.historyUC.GetPriceStats(c.Request().Context(), c.Param("shopId"), c.Param("productId"), r)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Price stats retrieved successfully")
}

// ListShopPrices handles the listing of shops carrying a product
func (h *ComparisonHandler) ListShopPrices(c echo.Context) error {
	query := usecase.ShopPriceQuery{
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}

	var err error
	if query.UserLat, err = parseFloatParam(c, "lat"); err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", err.Error())
	}
	if query.UserLng, err = parseFloatParam(c, "lng"); err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", err.Error())
	}
	if query.RadiusKm, err = parseFloatParam(c, "radius_km"); err != nil {
		return response.BadRequest(c, "INVALID_RADIUS", err.Error())
	}

	entries, err := h.listingUC.ListShopPrices(c.Request().Context(), c.Param("productId"), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Shop prices retrieved successfully")
}

// parseHistoryRange reads optional RFC3339 start/end query parameters
func parseHistoryRange(c echo.Context) (usecase.HistoryRange, error) {
	var r usecase.HistoryRange

	if raw := c.QueryParam("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return r, err
		}
		r.Start = &start
	}
	if raw := c.QueryParam("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return r, err
		}
		r.End = &end
	}

	return r, nil
}

// parseFloatParam reads an optional float query parameter
func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
