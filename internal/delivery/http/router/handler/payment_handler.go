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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment-related handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency"`
	Reference string  `json:"reference"`
}

// Record handles appending a payment record
func (h *PaymentHandler) Record(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.RecordPayment(c.Request().Context(), usecase.RecordPaymentInput{
		UserID:    req.UserID,
		Type:      entity.PaymentType(req.Type),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Reference: req.Reference,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// ListByUser handles listing a user's payments
func (h *PaymentHandler) ListByUser(c echo.Context) error {
	payments, err := h.paymentUC.ListUserPayments(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// Invoice handles building the invoice view for a payment
func (h *PaymentHandler) Invoice(c echo.Context) error {
	invoice, err := h.paymentUC.GenerateInvoice(c.Request().Context(), c.Param("paymentId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice, "Invoice generated successfully")
}
