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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for adding a favorite
type AddFavoriteRequest struct {
	Type   string `json:"type" validate:"required,oneof=product shop"`
	ItemID string `json:"item_id" validate:"required"`
}

// Add handles bookmarking an item
func (h *FavoriteHandler) Add(c echo.Context) error {
	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.favoriteUC.AddFavorite(c.Request().Context(), c.Param("userId"), entity.FavoriteType(req.Type), req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Favorite added successfully")
}

// Remove handles unbookmarking an item
func (h *FavoriteHandler) Remove(c echo.Context) error {
	err := h.favoriteUC.RemoveFavorite(c.Request().Context(), c.Param("userId"), entity.FavoriteType(c.Param("type")), c.Param("itemId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

// List handles listing a user's favorites; ?type= narrows by kind
func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), c.Param("userId"), entity.FavoriteType(c.QueryParam("type")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}
