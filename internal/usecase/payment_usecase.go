package usecase

import (
	"context"
	"time"

	"pricefield/internal/domain/entity"
)

// RecordPaymentInput carries the fields needed to record a payment
type RecordPaymentInput struct {
	UserID    string
	Type      entity.PaymentType
	Amount    float64
	Currency  string
	Reference string
}

// Invoice is a derived view of a recorded payment
type Invoice struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	PaymentID     string    `json:"paymentId"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// PaymentUsecase defines the interface for payment use cases
type PaymentUsecase interface {
	// RecordPayment appends a payment record
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*entity.Payment, error)

	// ListUserPayments retrieves a user's payments, newest first
	ListUserPayments(ctx context.Context, userID string) ([]*entity.Payment, error)

	// GenerateInvoice builds the invoice view for a recorded payment
	GenerateInvoice(ctx context.Context, paymentID string) (*Invoice, error)
}
