package handler

import (
	"log/slog"
	"net/http"

	"pricefield/internal/delivery/http/response"
	"pricefield/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for search-related handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// Search handles matching a term against products and shops
func (h *SearchHandler) Search(c echo.Context) error {
	result, err := h.searchUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Search completed successfully")
}

// History handles listing recent search terms
func (h *SearchHandler) History(c echo.Context) error {
	history, err := h.searchUC.GetSearchHistory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Search history retrieved successfully")
}

// ClearHistory handles dropping all recorded terms
func (h *SearchHandler) ClearHistory(c echo.Context) error {
	if err := h.searchUC.ClearSearchHistory(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Search history cleared successfully")
}
