package handler

import (
	"log/slog"
	"net/http"

	"pricefield/internal/delivery/http/response"
	"pricefield/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for starting a subscription
type SubscribeRequest struct {
	Plan      string  `json:"plan" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	AutoRenew bool    `json:"auto_renew"`
}

// Subscribe handles starting a premium subscription
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), usecase.SubscribeInput{
		UserID:    c.Param("userId"),
		Plan:      req.Plan,
		Amount:    req.Amount,
		AutoRenew: req.AutoRenew,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscribed successfully")
}

// Cancel handles cancelling the active subscription
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	if err := h.subscriptionUC.CancelSubscription(c.Request().Context(), c.Param("userId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription cancelled successfully")
}

// GetActive handles retrieving the active subscription
func (h *SubscriptionHandler) GetActive(c echo.Context) error {
	subscription, err := h.subscriptionUC.GetActiveSubscription(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription retrieved successfully")
}

// List handles listing the user's subscriptions
func (h *SubscriptionHandler) List(c echo.Context) error {
	subscriptions, err := h.subscriptionUC.ListUserSubscriptions(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// ExpireDue handles sweeping lapsed subscriptions, for operators and cron
func (h *SubscriptionHandler) ExpireDue(c echo.Context) error {
	expired, err := h.subscriptionUC.ExpireDue(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"expired": expired}, "Expired subscriptions swept successfully")
}
