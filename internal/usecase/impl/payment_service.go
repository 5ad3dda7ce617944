package impl

import (
	"context"
	"fmt"
	"strings"

	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	clock       service.Clock
	idGen       service.IDGenerator
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	UserRepo    repository.UserRepository
	Clock       service.Clock
	IDGen       service.IDGenerator
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		userRepo:    params.UserRepo,
		clock:       params.Clock,
		idGen:       params.IDGen,
	}
}

// RecordPayment appends a payment record
func (s *paymentService) RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	currency := input.Currency
	if currency == "" {
		currency = "TWD"
	}

	payment := &entity.Payment{
		ID:        s.idGen.NewID("pay"),
		UserID:    input.UserID,
		Type:      input.Type,
		Amount:    input.Amount,
		Currency:  currency,
		Reference: input.Reference,
		CreatedAt: s.clock.Now(),
	}

	if err := s.paymentRepo.Append(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	return payment, nil
}

// ListUserPayments retrieves a user's payments, newest first
func (s *paymentService) ListUserPayments(ctx context.Context, userID string) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by user")
	}

	return payments, nil
}

// GenerateInvoice builds the invoice view for a recorded payment. The
// invoice number is derived from the payment id so regenerating is
// stable.
func (s *paymentService) GenerateInvoice(ctx context.Context, paymentID string) (*usecase.Invoice, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	userName := ""
	if user, err := s.userRepo.FindByID(ctx, payment.UserID); err == nil {
		userName = user.Name
	}

	return &usecase.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%s", strings.ToUpper(payment.ID)),
		PaymentID:     payment.ID,
		UserID:        payment.UserID,
		UserName:      userName,
		Description:   invoiceDescription(payment.Type),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		IssuedAt:      payment.CreatedAt,
	}, nil
}

func invoiceDescription(t entity.PaymentType) string {
	switch t {
	case entity.PaymentTypeSubscription:
		return "Premium subscription"
	case entity.PaymentTypeListingFee:
		return "Listing fee"
	default:
		return "Service charge"
	}
}
